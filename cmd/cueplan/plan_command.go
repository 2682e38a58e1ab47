package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cueplan/internal/emphasis"
	"cueplan/internal/plan"
	"cueplan/internal/planstore"
	"cueplan/internal/textutil"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var transcriptPath string
	var duration float64
	var title string
	var outputPath string
	var save bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan <script.json>",
		Short: "Build a full render plan from a narration script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
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
			total, err := requireDuration(duration, segments)
			if err != nil {
				return err
			}

			engine := plan.New(engineOptions(cfg), logger)
			p := engine.Build(ns, segments, total)

			if strings.TrimSpace(title) == "" {
				title = defaultTitle(ns.Hook, p.RunID)
			}

			if outputPath != "" {
				written, err := writePlanFile(cfg.Paths.OutputDir, outputPath, title, p)
				if err != nil {
					return err
				}
				successLine(cmd.OutOrStdout(), "Wrote plan to %s", written)
			}

			if save {
				if err := ctx.withStore(func(store *planstore.Store) error {
					return store.Save(cmd.Context(), title, p)
				}); err != nil {
					return err
				}
				successLine(cmd.OutOrStdout(), "Saved run %s", p.RunID)
			}

			if asJSON {
				return writeJSON(cmd, p)
			}
			printPlanSummary(cmd, p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Speech-to-text transcript JSON with timed segments")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "Total video duration in seconds")
	cmd.Flags().StringVar(&title, "title", "", "Display title for the stored run")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the plan JSON to this file (or directory)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the run in the plan database")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full plan as JSON")

	return cmd
}

// defaultTitle derives a run title from the script hook, falling back to the
// run ID when the hook is blank.
func defaultTitle(hook, runID string) string {
	collapsed := textutil.CollapseWhitespace(hook)
	if collapsed == "" {
		return runID
	}
	if len([]rune(collapsed)) > 60 {
		collapsed = string([]rune(collapsed)[:60])
	}
	return collapsed
}

// writePlanFile stores the plan JSON at target. A directory target (or a
// trailing separator) gets a sanitized file name derived from the title.
func writePlanFile(outputDir, target, title string, p *plan.Plan) (string, error) {
	path := target
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		path = filepath.Join(target, planFileName(title, p.RunID))
	} else if strings.HasSuffix(target, string(os.PathSeparator)) {
		path = filepath.Join(strings.TrimRight(target, string(os.PathSeparator)), planFileName(title, p.RunID))
	}
	if path == "" {
		path = filepath.Join(outputDir, planFileName(title, p.RunID))
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write plan: %w", err)
	}
	return path, nil
}

func planFileName(title, runID string) string {
	base := textutil.SanitizeFileName(title)
	if base == "" {
		base = runID
	}
	return base + ".json"
}

func printPlanSummary(cmd *cobra.Command, p *plan.Plan) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Run %s (%s, %s)\n", p.RunID, p.Source, formatSeconds(p.TotalSeconds))
	if p.Boundary != nil {
		fmt.Fprintf(out, "Scene cuts: %s and %s\n", formatSeconds(p.Boundary.Cut1), formatSeconds(p.Boundary.Cut2))
	} else {
		fallback := plan.UniformThirds(p.TotalSeconds)
		fmt.Fprintf(out, "Scene cuts: no cue match; uniform fallback %s and %s\n",
			formatSeconds(fallback.Cut1), formatSeconds(fallback.Cut2))
	}

	rows := make([][]string, 0, len(p.Blocks))
	for i, b := range p.Blocks {
		span := ""
		if p.Source == plan.SourceTranscript {
			span = formatSpan(b.Start, b.End)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(b.Weight),
			emphasisLabel(p.Emphasis, i),
			span,
			strings.Join(b.Lines, " | "),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Weight", "Emphasis", "Span", "Text"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	))
}

func emphasisLabel(assignments []emphasis.Assignment, index int) string {
	for _, a := range assignments {
		if a.BlockIndex == index && a.Level != emphasis.LevelNone {
			return string(a.Level)
		}
	}
	return ""
}
