// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/user/framepace/pkg/framepace"
	"github.com/user/framepace/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for framepace.
type Config struct {
	// Input/Output
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// Pacing
	DepthPolicy  string          `yaml:"depth_policy"`
	ReorderDepth int             `yaml:"reorder_depth"`
	Chapters     []ChapterConfig `yaml:"chapters"`

	// Encoding
	Quality int `yaml:"quality"`
	Bitrate int `yaml:"bitrate"`
	GopSize int `yaml:"gop_size"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// ChapterConfig places a chapter boundary at a frame index.
type ChapterConfig struct {
	Frame int `yaml:"frame"`
	ID    int `yaml:"id"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Pacing
		DepthPolicy: string(framepace.DepthAsReported),

		// Encoding (medium quality preset)
		Quality: 25,
		Bitrate: 2000,
		GopSize: 60,

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c Config) Validate() error {
	switch framepace.DepthPolicy(c.DepthPolicy) {
	case framepace.DepthAsReported, framepace.DepthDoubled, framepace.DepthFixed, "":
	default:
		return fmt.Errorf("unknown depth policy %q", c.DepthPolicy)
	}

	if c.ReorderDepth < 0 || c.ReorderDepth > framepace.MaxReorderDepth {
		return fmt.Errorf("reorder depth %d out of range (0..%d)", c.ReorderDepth, framepace.MaxReorderDepth)
	}

	seen := make(map[int]bool)
	for _, ch := range c.Chapters {
		if ch.Frame < 0 {
			return fmt.Errorf("chapter %d: negative frame index %d", ch.ID, ch.Frame)
		}
		if seen[ch.Frame] {
			return fmt.Errorf("duplicate chapter mark at frame %d", ch.Frame)
		}
		seen[ch.Frame] = true
	}

	return nil
}

// ToPacingConfig converts Config to framepace.Config.
func (c Config) ToPacingConfig() framepace.Config {
	builder := framepace.NewConfigBuilder().
		WithDepthPolicy(framepace.DepthPolicy(c.DepthPolicy)).
		WithQuality(c.Quality).
		WithBitrate(c.Bitrate).
		WithGopSize(c.GopSize).
		WithSize(c.Width, c.Height)

	if framepace.DepthPolicy(c.DepthPolicy) == framepace.DepthFixed {
		builder.WithReorderDepth(c.ReorderDepth)
	}

	for _, ch := range c.Chapters {
		builder.WithChapter(ch.Frame, ch.ID)
	}

	return builder.Build()
}

// ToOrchestratorConfig converts Config to orchestrator.Config with the
// given resolved reorder depth.
func (c Config) ToOrchestratorConfig(resolvedDepth int) orchestrator.Config {
	return c.ToPacingConfig().ToOrchestratorConfig(c.InputPath, c.OutputPath, resolvedDepth)
}
