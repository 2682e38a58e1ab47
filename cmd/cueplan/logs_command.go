package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"cueplan/internal/logtail"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display the cueplan log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logPath := filepath.Join(cfg.Paths.LogDir, "cueplan.log")
			return logtail.Tail(cmd.Context(), logPath, cmd.OutOrStdout(), logtail.Options{
				Lines:  lines,
				Follow: follow,
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to print")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines as they arrive")

	return cmd
}
