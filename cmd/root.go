// Package cmd provides the CLI commands for the breathe application.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	muteFlag  bool
	plainMode bool
	debugFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "breathe",
	Short: "breathe - a guided breathing timer for the terminal",
	Long: `breathe walks you through timed breathing practices such as 4-7-8,
box-style relaxation and resonance breathing, with tones and visual cues
for every phase.

Run "breathe" with no arguments to pick a method interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&muteFlag, "mute", false, "Start with tones muted")
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "Print phase changes as text instead of the fullscreen UI")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write a debug log to ~/.breathe/debug.log")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("breathe\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(cuesCmd)
	rootCmd.AddCommand(configCmd)
}

// runRoot opens the picker, or the configured default method. Without a
// terminal it prints the catalog instead.
func runRoot(cmd *cobra.Command, args []string) error {
	if plainMode || !isTTY(cmd.OutOrStdout()) {
		return printMethods(cmd.OutOrStdout(), terminalWidth())
	}
	return launchTUI(app.config.DefaultMethod)
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// launchTUI runs the fullscreen interface until the user quits.
func launchTUI(methodID string) error {
	ctx, stop := setupSignalHandler()
	defer stop()

	if err := app.timer.Run(ctx, methodID); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	app.emitter.Wait()
	return nil
}
