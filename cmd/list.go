package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/xvierd/breathe-cli/internal/domain"
)

var listJSON bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List breathing methods",
	Long:  `List every built-in breathing method with its rhythm and cycle count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listJSON {
			return printMethodsJSON(cmd.OutOrStdout(), app.catalog.List())
		}
		return printMethods(cmd.OutOrStdout(), terminalWidth())
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output methods as JSON")
}

// methodJSON is the --json shape of a method.
type methodJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Inhale       int    `json:"inhale"`
	Hold         int    `json:"hold"`
	Exhale       int    `json:"exhale"`
	Cycles       int    `json:"cycles"`
	TotalSeconds int    `json:"total_seconds"`
	Color        string `json:"color"`
}

func printMethodsJSON(w io.Writer, methods []domain.BreathingMethod) error {
	list := make([]methodJSON, 0, len(methods))
	for _, m := range methods {
		list = append(list, methodJSON{
			ID:           m.ID,
			Name:         m.Name,
			Description:  m.Description,
			Inhale:       m.Inhale,
			Hold:         m.Hold,
			Exhale:       m.Exhale,
			Cycles:       m.Cycles,
			TotalSeconds: m.TotalSeconds(),
			Color:        m.Color,
		})
	}
	data := map[string]interface{}{
		"methods": list,
		"count":   len(list),
	}
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal methods: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

// printMethods writes the catalog as a plain table sized to width.
func printMethods(w io.Writer, width int) error {
	methods := app.catalog.List()
	fmt.Fprintf(w, "🫁 Breathing methods (%d):\n\n", len(methods))
	for _, m := range methods {
		fmt.Fprintf(w, "[%s] %s  %s\n", m.ID, m.Name, rhythm(m))
		if m.Description != "" {
			fmt.Fprintf(w, "    %s\n", runewidth.Truncate(m.Description, max(20, width-4), "…"))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Run "breathe start <id>" to begin.`)
	return nil
}

// rhythm formats a method as "4-7-8 ×5", omitting hold when it is zero.
func rhythm(m domain.BreathingMethod) string {
	parts := []string{fmt.Sprint(m.Inhale)}
	if m.HasHold() {
		parts = append(parts, fmt.Sprint(m.Hold))
	}
	parts = append(parts, fmt.Sprint(m.Exhale))
	return fmt.Sprintf("%s ×%d (%s)", strings.Join(parts, "-"), m.Cycles, formatSeconds(m.TotalSeconds()))
}

// formatSeconds formats a whole number of seconds as MM:SS.
func formatSeconds(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
