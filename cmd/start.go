package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/services"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <method-id>",
	Short: "Start a breathing method",
	Long: `Open a breathing method by id (see "breathe list").

In the fullscreen UI an unknown id falls back to the method picker. With
--plain, or when stdout is not a terminal, the practice starts right away and
each phase change is printed as a line of text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		methodID := args[0]
		if plainMode || !isTTY(cmd.OutOrStdout()) {
			ctx, stop := setupSignalHandler()
			defer stop()
			return runPlain(ctx, cmd.OutOrStdout(), methodID, nil)
		}
		return launchTUI(methodID)
	},
}

// runPlain runs methodID headless and prints each phase change to w.
// newTicker overrides the wall clock when non-nil.
func runPlain(ctx context.Context, w io.Writer, methodID string, newTicker func() services.Ticker) error {
	session, err := services.NewSessionService(app.catalog, methodID, app.emitter, sessionOptions()...)
	if err != nil {
		if errors.Is(err, domain.ErrMethodNotFound) {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(app.catalog.IDs(), ", "))
		}
		return err
	}

	method := session.Method()
	fmt.Fprintf(w, "%s · %s · %d cycles\n", method.Name, rhythm(method), method.Cycles)

	var last domain.Snapshot
	runner := services.NewRunner(session, func(s domain.Snapshot) {
		if s.Phase == domain.PhaseReady {
			return
		}
		if s.Phase != last.Phase || s.CurrentCycle != last.CurrentCycle {
			fmt.Fprintln(w, phaseLine(s))
		}
		last = s
	})
	if newTicker != nil {
		runner.SetTicker(func(_ time.Duration) services.Ticker { return newTicker() })
	}

	err = runner.Run(ctx)
	app.emitter.Wait()
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "Stopped.")
		return nil
	}
	return err
}

// phaseLine formats a snapshot for plain output.
func phaseLine(s domain.Snapshot) string {
	switch s.Phase {
	case domain.PhaseFinished:
		return fmt.Sprintf("[%3.0f%%] %s", s.Percentage, s.Phase.Label())
	default:
		return fmt.Sprintf("[%3.0f%%] cycle %d/%d  %-12s %ds", s.Percentage, s.CurrentCycle, s.TotalCycles, s.Phase.Label(), s.SecondsRemaining)
	}
}
