package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cueplan/internal/blocks"
	"cueplan/internal/script"
)

func newBlocksCommand(ctx *commandContext) *cobra.Command {
	var transcriptPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "blocks <script.json>",
		Short: "Preview on-screen text blocks for a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			ns, err := loadNarration(args[0])
			if err != nil {
				return err
			}
			segments, err := loadSegments(transcriptPath)
			if err != nil {
				return err
			}

			opts := engineOptions(cfg)
			var bs []blocks.Block
			timed := len(segments) > 0
			if timed {
				bs = blocks.FromTranscript(segments, opts.Blocks)
			} else {
				phrases := script.SplitPhrases(ns.Joined(), opts.Split)
				bs = blocks.FromPhrases(phrases)
			}

			if asJSON {
				return writeJSON(cmd, bs)
			}

			rows := make([][]string, 0, len(bs))
			for i, b := range bs {
				span := ""
				if timed {
					span = formatSpan(b.Start, b.End)
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					string(b.Weight),
					span,
					strings.Join(b.Lines, " | "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Weight", "Span", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Speech-to-text transcript JSON with timed segments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the blocks as JSON")

	return cmd
}
