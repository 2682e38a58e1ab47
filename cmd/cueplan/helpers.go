package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"cueplan/internal/blocks"
	"cueplan/internal/boundaries"
	"cueplan/internal/config"
	"cueplan/internal/plan"
	"cueplan/internal/script"
	"cueplan/internal/timing"
	"cueplan/internal/transcript"
)

// loadNarration reads a script JSON file with hook/body/opinion/cta sections.
func loadNarration(path string) (script.Narration, error) {
	var ns script.Narration

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return ns, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return ns, fmt.Errorf("read script: %w", err)
	}
	if err := json.Unmarshal(data, &ns); err != nil {
		return ns, fmt.Errorf("parse script %s: %w", path, err)
	}
	if ns.IsEmpty() {
		return ns, fmt.Errorf("script %s has no narration text", path)
	}
	return ns, nil
}

// loadSegments reads and validates an optional transcript file. An empty
// path returns nil segments without error.
func loadSegments(path string) ([]transcript.Segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	segments, err := transcript.LoadFile(expanded)
	if err != nil {
		return nil, err
	}
	if err := transcript.Validate(segments); err != nil {
		return nil, fmt.Errorf("transcript %s: %w", path, err)
	}
	return segments, nil
}

// engineOptions maps the loaded configuration onto pipeline options.
func engineOptions(cfg *config.Config) plan.Options {
	return plan.Options{
		Split: script.SplitOptions{
			MaxCharsPerPhrase: cfg.Splitter.MaxCharsPerPhrase,
			MinWordsPerPhrase: cfg.Splitter.MinWordsPerPhrase,
		},
		Boundaries: boundaries.Options{
			ToleranceRatio:      cfg.Boundaries.MarkerToleranceRatio,
			MinSegmentSeconds:   cfg.Boundaries.MinSegmentSeconds,
			MinMatchScore:       cfg.Boundaries.MinMatchScore,
			QuantizeStepSeconds: cfg.Boundaries.QuantizeStepSeconds,
		},
		Blocks: blocks.Options{
			MaxJoinGapSeconds: cfg.Blocks.MaxJoinGapSeconds,
			MaxJoinWords:      cfg.Blocks.MaxJoinWords,
			MaxJoinChars:      cfg.Blocks.MaxJoinChars,
			MinBlockSeconds:   cfg.MinBlockSeconds(),
		},
	}
}

// timingOptions maps the loaded configuration onto schedule options.
func timingOptions(cfg *config.Config) timing.Options {
	return timing.Options{
		FadeSeconds: cfg.Timing.FadeSeconds,
		LeadSeconds: cfg.Timing.LeadSeconds,
		LagSeconds:  cfg.Timing.LagSeconds,
	}
}

// requireDuration validates the --duration flag against an optional
// transcript: at least one of the two must pin the total length.
func requireDuration(duration float64, segments []transcript.Segment) (float64, error) {
	if duration > 0 {
		return duration, nil
	}
	if total := transcript.TotalDuration(segments); total > 0 {
		return total, nil
	}
	return 0, errors.New("total duration unknown: pass --duration or a transcript with timestamps")
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}

func formatSpan(start, end float64) string {
	return fmt.Sprintf("%.2f-%.2f", start, end)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
)

// successLine prints a confirmation line, green when stdout is a terminal.
func successLine(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if shouldColorize(w) {
		msg = ansiGreen + msg + ansiReset
	}
	fmt.Fprintln(w, msg)
}
