package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cueplan/internal/planstore"
	"cueplan/internal/timing"
)

func newSampleCommand(ctx *commandContext) *cobra.Command {
	var atSeconds float64
	var frame int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sample <run-id>",
		Short: "Resolve the active block of a stored run at one instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *planstore.Store) error {
				p, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				sched := p.Schedule(timingOptions(cfg))
				var s timing.Sample
				if cmd.Flags().Changed("frame") {
					s = sched.AtFrame(frame, cfg.Timing.FrameRate)
				} else {
					s = sched.At(atSeconds)
				}
				if s.Index < 0 {
					return fmt.Errorf("run %s has no blocks to sample", args[0])
				}

				block := p.Blocks[s.Index]
				if asJSON {
					return writeJSON(cmd, struct {
						Index   int      `json:"index"`
						Lines   []string `json:"lines"`
						Start   float64  `json:"start_seconds"`
						Opacity float64  `json:"opacity"`
					}{Index: s.Index, Lines: block.Lines, Start: s.Start, Opacity: s.Opacity})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Block %d (%s) from %s, opacity %.2f\n",
					s.Index, block.Weight, formatSeconds(s.Start), s.Opacity)
				fmt.Fprintln(out, block.Text())
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&atSeconds, "time", "T", 0, "Instant in seconds from scene start")
	cmd.Flags().IntVar(&frame, "frame", 0, "Frame number instead of seconds (uses timing.frame_rate)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the sample as JSON")

	return cmd
}
