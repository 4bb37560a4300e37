package ports

import (
	"image"
)

// PacketSink abstracts where paced packets end up, typically a
// container muxer.
type PacketSink interface {
	// Begin initializes the sink for a new stream.
	Begin(info StreamInfo) error

	// WritePacket adds one paced packet. Packets arrive in decode order.
	WritePacket(p Packet) error

	// End finalizes the stream and returns the container data.
	End() ([]byte, error)
}

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveJobJSON saves the resolved job configuration as JSON.
	SaveJobJSON(data []byte) error

	// SavePacketReport saves the per-packet timing report as JSON.
	SavePacketReport(data []byte) error

	// SaveTimeline saves the PTS/DTS timeline chart.
	SaveTimeline(img image.Image) error

	// SaveStatsLog saves the encoder's rate-control statistics.
	SaveStatsLog(data []byte) error
}
