package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/breathe-cli/internal/adapters/audio"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// cuesCmd plays every tone so users can check their audio setup.
var cuesCmd = &cobra.Command{
	Use:   "cues",
	Short: "Play every phase and countdown tone",
	Long:  `Sound check: plays the tone for each phase, then the 3-2-1 countdown ladder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if muteFlag {
			fmt.Fprintln(cmd.OutOrStdout(), "Sound is muted (--mute); nothing to play.")
			return nil
		}
		return playCues(cmd.OutOrStdout(), audio.BeepPlayer{})
	},
}

// playCues plays each profile in order and reports the result. It stops at
// the first backend error.
func playCues(w io.Writer, player ports.TonePlayer) error {
	for _, phase := range domain.Phases {
		profile, _ := audio.PhaseProfile(phase)
		if err := playOne(w, player, phase.Label(), profile); err != nil {
			return err
		}
	}
	for n := domain.CountdownWindow; n >= 1; n-- {
		profile, _ := audio.CountdownProfile(n)
		if err := playOne(w, player, fmt.Sprintf("Countdown %d", n), profile); err != nil {
			return err
		}
	}
	return nil
}

func playOne(w io.Writer, player ports.TonePlayer, label string, p ports.ToneProfile) error {
	fmt.Fprintf(w, "  %-18s %4.0f Hz  %v\n", label, p.Frequency, p.Duration)
	if err := player.PlayTone(p); err != nil {
		return fmt.Errorf("audio backend unavailable: %w", err)
	}
	return nil
}
