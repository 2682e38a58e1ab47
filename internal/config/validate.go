package config

import "fmt"

// Validate checks the configuration for out-of-range values. It assumes
// normalize has already run.
func (c *Config) Validate() error {
	if c.Splitter.MaxCharsPerPhrase < 8 {
		return fmt.Errorf("splitter.max_chars_per_phrase must be at least 8, got %d", c.Splitter.MaxCharsPerPhrase)
	}
	if c.Splitter.MinWordsPerPhrase < 1 {
		return fmt.Errorf("splitter.min_words_per_phrase must be at least 1, got %d", c.Splitter.MinWordsPerPhrase)
	}

	if c.Boundaries.MarkerToleranceRatio <= 0 || c.Boundaries.MarkerToleranceRatio >= 1 {
		return fmt.Errorf("boundaries.marker_tolerance_ratio must be in (0, 1), got %g", c.Boundaries.MarkerToleranceRatio)
	}
	if c.Boundaries.MinSegmentSeconds <= 0 {
		return fmt.Errorf("boundaries.min_segment_seconds must be positive, got %g", c.Boundaries.MinSegmentSeconds)
	}
	if c.Boundaries.MinMatchScore <= 0 || c.Boundaries.MinMatchScore > 1 {
		return fmt.Errorf("boundaries.min_match_score must be in (0, 1], got %g", c.Boundaries.MinMatchScore)
	}
	if c.Boundaries.QuantizeStepSeconds <= 0 {
		return fmt.Errorf("boundaries.quantize_step_seconds must be positive, got %g", c.Boundaries.QuantizeStepSeconds)
	}

	if c.Blocks.MaxJoinGapSeconds < 0 {
		return fmt.Errorf("blocks.max_join_gap_seconds must not be negative, got %g", c.Blocks.MaxJoinGapSeconds)
	}
	if c.Blocks.MaxJoinWords < 1 {
		return fmt.Errorf("blocks.max_join_words must be at least 1, got %d", c.Blocks.MaxJoinWords)
	}
	if c.Blocks.MaxJoinChars < 1 {
		return fmt.Errorf("blocks.max_join_chars must be at least 1, got %d", c.Blocks.MaxJoinChars)
	}
	if c.Blocks.MinBlockFrames < 0 {
		return fmt.Errorf("blocks.min_block_frames must not be negative, got %d", c.Blocks.MinBlockFrames)
	}

	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("timing.frame_rate must be positive, got %g", c.Timing.FrameRate)
	}
	if c.Timing.FadeSeconds < 0 {
		return fmt.Errorf("timing.fade_seconds must not be negative, got %g", c.Timing.FadeSeconds)
	}
	if c.Timing.LeadSeconds < 0 {
		return fmt.Errorf("timing.lead_seconds must not be negative, got %g", c.Timing.LeadSeconds)
	}
	if c.Timing.LagSeconds < 0 {
		return fmt.Errorf("timing.lag_seconds must not be negative, got %g", c.Timing.LagSeconds)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}

	return nil
}
