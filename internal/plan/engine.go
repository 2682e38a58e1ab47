package plan

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cueplan/internal/blocks"
	"cueplan/internal/boundaries"
	"cueplan/internal/emphasis"
	"cueplan/internal/logging"
	"cueplan/internal/script"
	"cueplan/internal/transcript"
)

// Options aggregates the tuning knobs of every pipeline stage.
type Options struct {
	Split      script.SplitOptions
	Boundaries boundaries.Options
	Blocks     blocks.Options
}

// Engine runs the pipeline. Safe for concurrent use; each Build derives
// everything from its arguments.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// New constructs an engine. A nil logger falls back to a no-op logger.
func New(opts Options, logger *slog.Logger) *Engine {
	return &Engine{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "plan-engine"),
	}
}

// Build runs the full pipeline over one script. Segments may be nil: that is
// the normal fallback path, not an error. When totalSeconds is not positive
// and a transcript exists, the transcript's end time is used instead.
//
// Precondition: segments, when present, are ordered and non-overlapping
// (transcript.Validate); the engine does not repair malformed input.
func (e *Engine) Build(ns script.Narration, segments []transcript.Segment, totalSeconds float64) *Plan {
	if totalSeconds <= 0 {
		totalSeconds = transcript.TotalDuration(segments)
	}

	p := &Plan{
		RunID:        uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		TotalSeconds: totalSeconds,
		Script:       ns,
	}

	if len(segments) > 0 {
		p.Source = SourceTranscript
		p.Blocks = blocks.FromTranscript(segments, e.opts.Blocks)
	} else {
		p.Source = SourcePhrases
		p.Phrases = script.SplitPhrases(ns.Joined(), e.opts.Split)
		p.Blocks = blocks.FromPhrases(p.Phrases)
	}

	p.Boundary = boundaries.Detect(ns, totalSeconds, e.opts.Boundaries)
	p.Emphasis = emphasis.Select(p.Blocks)

	e.logger.Debug("plan built",
		logging.String("run_id", p.RunID),
		logging.String("source", string(p.Source)),
		logging.Int("blocks", len(p.Blocks)),
		logging.Bool("boundary", p.Boundary != nil),
		logging.Float64("total_seconds", p.TotalSeconds),
	)
	return p
}
