// Package framepace provides a high-level API for pacing encoded video streams.
package framepace

import (
	"github.com/user/framepace/pkg/orchestrator"
)

// QualityPreset represents an encoding quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// QualitySettings contains quality parameters for encoding.
type QualitySettings struct {
	Quality int // CRF value (0-63, lower is better)
	Bitrate int // Target bitrate in kbps
}

// GetQualitySettings returns quality settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{
			Quality: 35,
			Bitrate: 1000,
		}
	case QualityHigh:
		return QualitySettings{
			Quality: 15,
			Bitrate: 6000,
		}
	default: // medium
		return QualitySettings{
			Quality: 25,
			Bitrate: 2000,
		}
	}
}

// DepthPolicy selects how the encoder's reported lookahead maps to the
// reorder depth used for pacing.
type DepthPolicy string

const (
	// DepthAsReported uses the encoder's reported lookahead unchanged.
	DepthAsReported DepthPolicy = "as_reported"

	// DepthDoubled doubles the reported lookahead. Some encoders
	// underreport their frame delay under multi-threaded lookahead.
	DepthDoubled DepthPolicy = "doubled"

	// DepthFixed ignores the encoder and uses a configured depth.
	DepthFixed DepthPolicy = "fixed"
)

// MaxReorderDepth is the largest supported encoder lookahead. The frame
// info window holds twice this many entries.
const MaxReorderDepth = 16

// Config represents the configuration for stream pacing.
type Config struct {
	// Pacing
	DepthPolicy  DepthPolicy // How to interpret the encoder's lookahead
	ReorderDepth int         // Lookahead used when DepthPolicy is DepthFixed

	// Chapters
	Chapters []orchestrator.ChapterMark

	// Encoding
	Quality int // CRF value (0-63, lower is better)
	Bitrate int // Target bitrate in kbps
	GopSize int // Keyframe interval in frames
	Width   int // Output width (0 = keep source)
	Height  int // Output height (0 = keep source)
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with streaming preset defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: streamingDefaults(),
	}
}

// NewLowLatencyConfigBuilder creates a new ConfigBuilder with low-latency
// preset defaults. Low latency forces a zero reorder depth, so packets
// leave in submission order.
func NewLowLatencyConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: lowLatencyDefaults(),
	}
}

// streamingDefaults returns the streaming preset configuration.
func streamingDefaults() Config {
	return Config{
		DepthPolicy: DepthAsReported,

		// Encoding (medium quality preset)
		Quality: 25,
		Bitrate: 2000,
		GopSize: 60,
	}
}

// lowLatencyDefaults returns the low-latency preset configuration.
func lowLatencyDefaults() Config {
	return Config{
		DepthPolicy:  DepthFixed,
		ReorderDepth: 0,

		// Encoding (medium quality preset)
		Quality: 25,
		Bitrate: 2000,
		GopSize: 30,
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.ReorderDepth < 0 {
		cfg.ReorderDepth = 0
	}
	if cfg.ReorderDepth > MaxReorderDepth {
		cfg.ReorderDepth = MaxReorderDepth
	}
	if cfg.GopSize < 1 {
		cfg.GopSize = 1
	}

	return cfg
}

// WithDepthPolicy sets how the encoder's lookahead maps to reorder depth.
func (b *ConfigBuilder) WithDepthPolicy(policy DepthPolicy) *ConfigBuilder {
	b.config.DepthPolicy = policy
	return b
}

// WithReorderDepth sets a fixed reorder depth and switches the policy
// to DepthFixed.
func (b *ConfigBuilder) WithReorderDepth(depth int) *ConfigBuilder {
	b.config.DepthPolicy = DepthFixed
	b.config.ReorderDepth = depth
	return b
}

// WithChapter adds a chapter mark at the given frame index.
func (b *ConfigBuilder) WithChapter(frame, id int) *ConfigBuilder {
	b.config.Chapters = append(b.config.Chapters, orchestrator.ChapterMark{Frame: frame, ID: id})
	return b
}

// WithQuality sets the CRF value (0-63, lower is better).
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithBitrate sets the target bitrate in kbps.
func (b *ConfigBuilder) WithBitrate(bitrate int) *ConfigBuilder {
	b.config.Bitrate = bitrate
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	settings := GetQualitySettings(preset)
	b.config.Quality = settings.Quality
	b.config.Bitrate = settings.Bitrate
	return b
}

// WithGopSize sets the keyframe interval in frames.
func (b *ConfigBuilder) WithGopSize(frames int) *ConfigBuilder {
	b.config.GopSize = frames
	return b
}

// WithSize sets the output dimensions. Zero keeps the source dimensions.
func (b *ConfigBuilder) WithSize(width, height int) *ConfigBuilder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// ResolveDepth applies the depth policy to the encoder's reported
// lookahead. The result is clamped to [0, MaxReorderDepth].
func (c Config) ResolveDepth(reported int) int {
	var depth int
	switch c.DepthPolicy {
	case DepthDoubled:
		depth = reported * 2
	case DepthFixed:
		depth = c.ReorderDepth
	default:
		depth = reported
	}

	if depth < 0 {
		depth = 0
	}
	if depth > MaxReorderDepth {
		depth = MaxReorderDepth
	}
	return depth
}

// ToOrchestratorConfig converts Config to orchestrator.Config. The
// reorder depth must already be resolved with ResolveDepth.
func (c Config) ToOrchestratorConfig(inputPath, outputPath string, resolvedDepth int) orchestrator.Config {
	return orchestrator.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,

		ReorderDepth: resolvedDepth,
		Chapters:     c.Chapters,

		Width:   c.Width,
		Height:  c.Height,
		Bitrate: c.Bitrate,
		Quality: c.Quality,
		GopSize: c.GopSize,
	}
}
