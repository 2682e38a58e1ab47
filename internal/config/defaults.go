package config

// Default returns the baseline configuration. Values mirror the embedded
// sample file.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   "~/.local/share/cueplan/plans",
			LogDir:    "~/.local/share/cueplan/logs",
			OutputDir: "~/.local/share/cueplan/output",
		},
		Splitter: Splitter{
			MaxCharsPerPhrase: 48,
			MinWordsPerPhrase: 3,
		},
		Boundaries: Boundaries{
			MarkerToleranceRatio: 0.15,
			MinSegmentSeconds:    8,
			MinMatchScore:        0.3,
			QuantizeStepSeconds:  1,
		},
		Blocks: Blocks{
			MaxJoinGapSeconds: 0.6,
			MaxJoinWords:      7,
			MaxJoinChars:      90,
			MinBlockFrames:    18,
		},
		Timing: Timing{
			FrameRate:   30,
			FadeSeconds: 0.5,
			LeadSeconds: 0.2,
			LagSeconds:  0.15,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
