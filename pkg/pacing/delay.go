package pacing

// DelayEstimator captures the constant offset between presentation
// order and decode order once the encoder's reorder depth worth of
// frames has been submitted.
//
// The depth is supplied once at stream start by whoever configured the
// encoder; this layer only consumes the final number. With depth d, the
// delay is fixed at the presentation start of the frame submitted at
// position d (0-indexed) and never changes afterwards.
type DelayEstimator struct {
	depth int
	delay int64
	known bool
}

// NewDelayEstimator returns an estimator for the given reorder depth.
// Depth 0 means the encoder never reorders and the delay is trivially 0.
func NewDelayEstimator(depth int) *DelayEstimator {
	e := &DelayEstimator{depth: depth}
	if depth == 0 {
		e.known = true
	}
	return e
}

// Depth returns the configured reorder depth.
func (e *DelayEstimator) Depth() int {
	return e.depth
}

// Observe must be called once per submitted frame, in submission order.
// It captures the delay when the frame at position depth arrives. The
// delay latches: once known it never changes.
func (e *DelayEstimator) Observe(seq int64, start int64) {
	if !e.known && seq == int64(e.depth) {
		e.delay = start
		e.known = true
	}
}

// Delay returns the captured delay. known is false until enough frames
// have been observed; downstream code must not consume the delay before
// then.
func (e *DelayEstimator) Delay() (delay int64, known bool) {
	return e.delay, e.known
}

// Force fixes the delay to the given value. The flush path uses it when
// the stream ends before the depth-th frame was ever submitted, so the
// frames actually available define the final delay.
func (e *DelayEstimator) Force(delay int64) {
	if !e.known {
		e.delay = delay
		e.known = true
	}
}
