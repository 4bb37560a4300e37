package pacing

// InfoWindow is the number of frames whose timing the registry retains.
// It must exceed the encoder's maximum reorder depth (16 per the coding
// standards we care about) with a safety margin, so that a slot cannot
// be overwritten while a packet referencing it is still in flight.
const InfoWindow = 32

const infoMask = InfoWindow - 1

type frameInfo struct {
	start    int64
	duration int64
}

// FrameInfoRegistry remembers the timing of the last InfoWindow
// submitted frames, keyed by sequence number. It is a fixed-window
// cache, not a checked map: callers must only look up sequence numbers
// recorded within the last InfoWindow submissions.
type FrameInfoRegistry struct {
	slots [InfoWindow]frameInfo
}

// Record stores timing for the frame with the given sequence number,
// overwriting whatever occupied the slot InfoWindow frames ago.
func (r *FrameInfoRegistry) Record(seq int64, start, duration int64) {
	i := seq & infoMask
	r.slots[i].start = start
	r.slots[i].duration = duration
}

// Start returns the recorded presentation start of frame seq.
func (r *FrameInfoRegistry) Start(seq int64) int64 {
	return r.slots[seq&infoMask].start
}

// Duration returns the recorded duration of frame seq.
func (r *FrameInfoRegistry) Duration(seq int64) int64 {
	return r.slots[seq&infoMask].duration
}
