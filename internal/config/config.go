package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// DataDir holds the plan run database.
	DataDir string `toml:"data_dir"`
	// LogDir receives the process log file.
	LogDir string `toml:"log_dir"`
	// OutputDir is the default destination for written plan JSON.
	OutputDir string `toml:"output_dir"`
}

// Splitter contains configuration for the phrase splitter.
type Splitter struct {
	MaxCharsPerPhrase int `toml:"max_chars_per_phrase"`
	MinWordsPerPhrase int `toml:"min_words_per_phrase"`
}

// Boundaries contains configuration for the topic boundary detector.
type Boundaries struct {
	MarkerToleranceRatio float64 `toml:"marker_tolerance_ratio"`
	MinSegmentSeconds    float64 `toml:"min_segment_seconds"`
	MinMatchScore        float64 `toml:"min_match_score"`
	QuantizeStepSeconds  float64 `toml:"quantize_step_seconds"`
}

// Blocks contains configuration for editorial block construction.
type Blocks struct {
	MaxJoinGapSeconds float64 `toml:"max_join_gap_seconds"`
	MaxJoinWords      int     `toml:"max_join_words"`
	MaxJoinChars      int     `toml:"max_join_chars"`
	// MinBlockFrames is the minimum standalone block span expressed in
	// frames at the configured frame rate.
	MinBlockFrames int `toml:"min_block_frames"`
}

// Timing contains configuration for the per-frame synchronizer.
type Timing struct {
	FrameRate   float64 `toml:"frame_rate"`
	FadeSeconds float64 `toml:"fade_seconds"`
	LeadSeconds float64 `toml:"lead_seconds"`
	LagSeconds  float64 `toml:"lag_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for cueplan.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Splitter   Splitter   `toml:"splitter"`
	Boundaries Boundaries `toml:"boundaries"`
	Blocks     Blocks     `toml:"blocks"`
	Timing     Timing     `toml:"timing"`
	Logging    Logging    `toml:"logging"`
}

// MinBlockSeconds converts the frame-denominated block minimum into seconds
// at the configured frame rate.
func (c *Config) MinBlockSeconds() float64 {
	if c.Timing.FrameRate <= 0 {
		return 0
	}
	return float64(c.Blocks.MinBlockFrames) / c.Timing.FrameRate
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cueplan/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cueplan.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories cueplan writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir, c.Paths.OutputDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
