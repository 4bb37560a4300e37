package ports

// Frame is a single uncompressed video frame handed to the pacer.
// Start and Stop are presentation timestamps in stream timescale units;
// Stop - Start is the frame's duration. Frames must be submitted in
// strictly increasing Start order.
type Frame struct {
	// Planes holds the raw pixel planes. The pacing layer treats them as
	// opaque and forwards them to the encoder untouched.
	Planes [][]byte

	Start int64
	Stop  int64

	// Chapter is the chapter number this frame begins, or 0 for none.
	// A chapter frame is requested as a keyframe so the chapter boundary
	// lands on a self-contained frame in the compressed stream.
	Chapter int
}

// Duration returns the frame's display duration.
func (f Frame) Duration() int64 {
	return f.Stop - f.Start
}

// PacketFlags describes the role of an output packet in the stream.
type PacketFlags uint8

const (
	// FlagReference marks a packet that later packets may depend on.
	// Until the encoder reports disposability, every packet carries it.
	FlagReference PacketFlags = 1 << iota
	// FlagKey marks a fully self-contained (sync) packet.
	FlagKey
)

// EncodedPacket is the raw output of a FrameEncoder before timing has
// been resolved. Token is the sequence number the encoder echoes back
// unmodified; it identifies the source frame.
type EncodedPacket struct {
	Data     []byte
	Token    int64
	Keyframe bool
}

// Packet is a fully resolved, paced output packet.
type Packet struct {
	Data []byte

	// Start is the presentation timestamp, Stop = Start + Duration.
	Start    int64
	Stop     int64
	Duration int64

	// RenderOffset is the decode timestamp. The pacing layer guarantees
	// RenderOffset <= Start for every released packet.
	RenderOffset int64

	Flags PacketFlags

	// Chapter is the chapter number beginning at this packet, or 0.
	Chapter int
}

// StreamInfo describes the paced stream to a PacketSink.
type StreamInfo struct {
	Timescale uint32
	Width     int
	Height    int
}
