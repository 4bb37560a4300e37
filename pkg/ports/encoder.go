package ports

// FrameEncoder abstracts a video encoder that may buffer and reorder
// frames internally before emitting packets.
type FrameEncoder interface {
	// Begin initializes the encoder. After Begin returns, ReorderDepth
	// reports the encoder's lookahead.
	Begin(opts EncoderOptions) error

	// ReorderDepth returns the number of frames the encoder buffers
	// before its first output. 0 means packets come out in submission
	// order. The value is only meaningful after Begin.
	ReorderDepth() int

	// Submit hands one frame to the encoder. The token is echoed back
	// unmodified on the packet that eventually carries this frame.
	// forceKeyframe requests that the frame be coded self-contained.
	Submit(frame Frame, token int64, forceKeyframe bool) error

	// Receive returns the next available packet. ok is false when the
	// encoder has nothing ready right now.
	Receive() (pkt EncodedPacket, ok bool, err error)

	// Flush signals end of stream. Remaining packets are drained with
	// Receive until it reports none.
	Flush() error

	// Stats returns rate-control statistics produced since the last
	// call, or "" when the encoder has none. Used for two-pass logs.
	Stats() string
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Width   int
	Height  int
	Bitrate int // Target bitrate in kbps
	Quality int // CRF value: 0-63 (lower is higher quality)
	GopSize int // Keyframe cadence in frames (0 = encoder default)
}
