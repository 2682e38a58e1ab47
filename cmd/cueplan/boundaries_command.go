package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cueplan/internal/boundaries"
	"cueplan/internal/plan"
)

func newBoundariesCommand(ctx *commandContext) *cobra.Command {
	var duration float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "boundaries <script.json>",
		Short: "Preview topic-aligned scene cuts for a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if duration <= 0 {
				return fmt.Errorf("--duration must be positive, got %g", duration)
			}

			ns, err := loadNarration(args[0])
			if err != nil {
				return err
			}

			boundary := boundaries.Detect(ns, duration, engineOptions(cfg).Boundaries)
			fallback := boundary == nil
			effective := boundary
			if fallback {
				uniform := plan.UniformThirds(duration)
				effective = &uniform
			}

			if asJSON {
				return writeJSON(cmd, struct {
					Cut1     float64 `json:"cut1"`
					Cut2     float64 `json:"cut2"`
					Fallback bool    `json:"fallback"`
				}{Cut1: effective.Cut1, Cut2: effective.Cut2, Fallback: fallback})
			}

			out := cmd.OutOrStdout()
			if fallback {
				fmt.Fprintln(out, "No cue scored high enough; using uniform thirds")
			}
			fmt.Fprintf(out, "Cut 1: %s\n", formatSeconds(effective.Cut1))
			fmt.Fprintf(out, "Cut 2: %s\n", formatSeconds(effective.Cut2))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "Total video duration in seconds")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the boundary as JSON")

	return cmd
}
