package pipeline

import (
	"github.com/user/framepace/pkg/ports"
)

// =============================================================================
// Pace Stage Types
// =============================================================================

// PaceInput contains the frames and encoder parameters for pacing.
type PaceInput struct {
	Frames []ports.Frame

	// ReorderDepth is the encoder lookahead after policy adjustment.
	ReorderDepth int

	Options ports.EncoderOptions
}

// PaceResult contains the paced, decode-ordered packets.
type PaceResult struct {
	Packets []ports.Packet

	// DtsDelay is the captured reorder delay; the constant offset
	// between presentation order and decode order for the stream.
	DtsDelay int64

	// UnresolvedChapters counts chapter marks that never met a
	// keyframe before end of stream.
	UnresolvedChapters int

	// StatsLog is the accumulated rate-control statistics output, empty
	// unless the encoder produces two-pass data.
	StatsLog string
}

// =============================================================================
// Mux Stage Types
// =============================================================================

// MuxInput contains the packets and stream parameters for muxing.
type MuxInput struct {
	Packets []ports.Packet
	Info    ports.StreamInfo
}

// MuxResult contains the muxed container.
type MuxResult struct {
	Data     []byte
	FileSize int64

	// DurationTicks is the stream length in timescale units.
	DurationTicks int64
}

// =============================================================================
// Report Types
// =============================================================================

// PacketReport is the per-packet timing record emitted to the debug
// sink as JSON.
type PacketReport struct {
	Index        int   `json:"index"`
	Start        int64 `json:"start"`
	Stop         int64 `json:"stop"`
	Duration     int64 `json:"duration"`
	RenderOffset int64 `json:"render_offset"`
	Keyframe     bool  `json:"keyframe"`
	Chapter      int   `json:"chapter,omitempty"`
	Size         int   `json:"size"`
}
