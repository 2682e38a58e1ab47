package config

import "strings"

// normalize fills omitted fields from defaults and expands path values.
// TOML zero values are treated as "not set" for the numeric knobs; none of
// them has a meaningful zero.
func (c *Config) normalize() error {
	defaults := Default()

	c.Paths.DataDir = strings.TrimSpace(c.Paths.DataDir)
	c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir)
	c.Paths.OutputDir = strings.TrimSpace(c.Paths.OutputDir)
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = defaults.Paths.DataDir
	}
	if c.Paths.LogDir == "" {
		c.Paths.LogDir = defaults.Paths.LogDir
	}
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = defaults.Paths.OutputDir
	}

	for _, p := range []*string{&c.Paths.DataDir, &c.Paths.LogDir, &c.Paths.OutputDir} {
		expanded, err := expandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}

	if c.Splitter.MaxCharsPerPhrase == 0 {
		c.Splitter.MaxCharsPerPhrase = defaults.Splitter.MaxCharsPerPhrase
	}
	if c.Splitter.MinWordsPerPhrase == 0 {
		c.Splitter.MinWordsPerPhrase = defaults.Splitter.MinWordsPerPhrase
	}

	if c.Boundaries.MarkerToleranceRatio == 0 {
		c.Boundaries.MarkerToleranceRatio = defaults.Boundaries.MarkerToleranceRatio
	}
	if c.Boundaries.MinSegmentSeconds == 0 {
		c.Boundaries.MinSegmentSeconds = defaults.Boundaries.MinSegmentSeconds
	}
	if c.Boundaries.MinMatchScore == 0 {
		c.Boundaries.MinMatchScore = defaults.Boundaries.MinMatchScore
	}
	if c.Boundaries.QuantizeStepSeconds == 0 {
		c.Boundaries.QuantizeStepSeconds = defaults.Boundaries.QuantizeStepSeconds
	}

	if c.Blocks.MaxJoinGapSeconds == 0 {
		c.Blocks.MaxJoinGapSeconds = defaults.Blocks.MaxJoinGapSeconds
	}
	if c.Blocks.MaxJoinWords == 0 {
		c.Blocks.MaxJoinWords = defaults.Blocks.MaxJoinWords
	}
	if c.Blocks.MaxJoinChars == 0 {
		c.Blocks.MaxJoinChars = defaults.Blocks.MaxJoinChars
	}
	if c.Blocks.MinBlockFrames == 0 {
		c.Blocks.MinBlockFrames = defaults.Blocks.MinBlockFrames
	}

	if c.Timing.FrameRate == 0 {
		c.Timing.FrameRate = defaults.Timing.FrameRate
	}
	if c.Timing.FadeSeconds == 0 {
		c.Timing.FadeSeconds = defaults.Timing.FadeSeconds
	}
	if c.Timing.LeadSeconds == 0 {
		c.Timing.LeadSeconds = defaults.Timing.LeadSeconds
	}
	if c.Timing.LagSeconds == 0 {
		c.Timing.LagSeconds = defaults.Timing.LagSeconds
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}

	return nil
}
