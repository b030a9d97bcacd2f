package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/breathe-cli/internal/config"
	"github.com/xvierd/breathe-cli/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit sound, haptics, notifications and the default method",
	Long:  `Interactively toggle sound, haptic pulses and desktop notifications, or pick the method "breathe" opens by default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), app.config, config.Save)
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// runConfig shows cfg, applies one change read from in, and persists it
// with save.
func runConfig(in io.Reader, out io.Writer, cfg *config.Config, save func(*config.Config) error) error {
	reader := bufio.NewReader(in)

	defaultMethod := "picker"
	if cfg.DefaultMethod != "" {
		defaultMethod = cfg.DefaultMethod
		if m, err := app.catalog.Get(cfg.DefaultMethod); err == nil {
			defaultMethod = fmt.Sprintf("%s (%s)", m.Name, m.ID)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Current configuration:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "    Sound:           %s\n", onOff(cfg.Sound.Enabled))
	fmt.Fprintf(out, "    Haptics:         %s\n", onOff(cfg.Haptics.Enabled))
	fmt.Fprintf(out, "    Notifications:   %s\n", onOff(cfg.Notifications.Enabled))
	fmt.Fprintf(out, "    Default method:  %s\n", defaultMethod)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  What would you like to change?")
	fmt.Fprintln(out, "    [s] Toggle sound")
	fmt.Fprintln(out, "    [h] Toggle haptics")
	fmt.Fprintln(out, "    [n] Toggle notifications")
	fmt.Fprintln(out, "    [d] Set default method")
	fmt.Fprintln(out, "    [q] Quit without saving")
	fmt.Fprint(out, "  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(strings.ToLower(choice))

	switch choice {
	case "s":
		cfg.Sound.Enabled = !cfg.Sound.Enabled
		return saveConfig(out, cfg, save, "Sound "+onOff(cfg.Sound.Enabled))
	case "h":
		cfg.Haptics.Enabled = !cfg.Haptics.Enabled
		return saveConfig(out, cfg, save, "Haptics "+onOff(cfg.Haptics.Enabled))
	case "n":
		cfg.Notifications.Enabled = !cfg.Notifications.Enabled
		return saveConfig(out, cfg, save, "Notifications "+onOff(cfg.Notifications.Enabled))
	case "d":
		return editDefaultMethod(reader, out, cfg, save)
	case "q", "":
		fmt.Fprintln(out, "  No changes made.")
		return nil
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func editDefaultMethod(reader *bufio.Reader, out io.Writer, cfg *config.Config, save func(*config.Config) error) error {
	fmt.Fprintln(out)
	for _, m := range app.catalog.List() {
		fmt.Fprintf(out, "    [%s] %s\n", m.ID, m.Name)
	}
	fmt.Fprint(out, "  Method id (empty for the picker): ")

	id, _ := reader.ReadString('\n')
	id = strings.TrimSpace(id)
	if id != "" {
		if _, err := app.catalog.Get(id); err != nil {
			if errors.Is(err, domain.ErrMethodNotFound) {
				return fmt.Errorf("unknown method %q; see \"breathe list\"", id)
			}
			return err
		}
	}
	cfg.DefaultMethod = id

	label := "picker"
	if id != "" {
		label = id
	}
	return saveConfig(out, cfg, save, "Default method: "+label)
}

func saveConfig(out io.Writer, cfg *config.Config, save func(*config.Config) error, msg string) error {
	if err := save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "\n  Saved: %s\n", msg)
	return nil
}
