// Package summarizer provides summary generation for pacing results.
package summarizer

import "time"

// Summary contains all data collected during a pacing run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input stream information
	Input InputInfo

	// Pacing results
	Pacing PacingInfo

	// Pacing settings
	Settings Settings

	// Output details
	Output OutputInfo
}

// InputInfo contains information about the source stream.
type InputInfo struct {
	Path       string
	FrameCount int
	Timescale  uint32
	Width      int
	Height     int
}

// PacingInfo contains the timing results of the run.
type PacingInfo struct {
	ReorderDepth       int
	DtsDelay           int64
	PacketCount        int
	UnresolvedChapters int
}

// Settings contains the pacing configuration.
type Settings struct {
	DepthPolicy string
	Quality     int
	Bitrate     int
	GopSize     int
}

// OutputInfo contains information about the output file.
type OutputInfo struct {
	Path          string
	FileSize      int64
	DurationTicks int64
}

// DurationSec returns the output duration in seconds, or 0 when the
// input timescale is unknown.
func (s *Summary) DurationSec() float64 {
	if s.Input.Timescale == 0 {
		return 0
	}
	return float64(s.Output.DurationTicks) / float64(s.Input.Timescale)
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input stream information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithPacing sets pacing results.
func (b *Builder) WithPacing(pacing PacingInfo) *Builder {
	b.summary.Pacing = pacing
	return b
}

// WithSettings sets pacing settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output file information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
