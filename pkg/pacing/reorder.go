package pacing

import (
	"github.com/user/framepace/pkg/ports"
)

// ReorderQueue assigns the render offset (DTS) by rearranging
// presentation timestamps in this sequence:
//
//	pts0 - delay, pts1 - delay, ..., pts(d-1) - delay, pts0, pts1, ...
//
// where d is the reorder depth and delay == pts(d), the presentation
// start of the frame the encoder was holding when it produced its first
// packet. The first d packets form the startup transient; from then on
// a packet's DTS is the start of the frame submitted d positions before
// it. This guarantees RenderOffset <= Start for every packet. It is the
// same scheme x264 uses to generate DTS.
//
// While the delay is still unknown (fewer than d+1 frames submitted)
// every packet is held; the first release drains the whole queue in
// submission order, and afterwards packets pass straight through.
type ReorderQueue struct {
	registry *FrameInfoRegistry
	delay    *DelayEstimator
	held     []ports.Packet
	out      int64
}

// NewReorderQueue returns a queue fed by the given registry and delay
// estimator.
func NewReorderQueue(registry *FrameInfoRegistry, delay *DelayEstimator) *ReorderQueue {
	return &ReorderQueue{registry: registry, delay: delay}
}

// Process accepts one resolved packet and returns zero or more packets
// ready for release, in decode order.
func (q *ReorderQueue) Process(p ports.Packet) []ports.Packet {
	if q.delay.Depth() == 0 {
		p.RenderOffset = p.Start
		return []ports.Packet{p}
	}

	q.held = append(q.held, p)
	if _, known := q.delay.Delay(); !known {
		return nil
	}
	return q.release()
}

// Flush releases anything still held at end of stream. If the stream
// ended before the delay could be captured, the frames actually
// submitted define it: the start of the first frame becomes the delay.
func (q *ReorderQueue) Flush() []ports.Packet {
	if len(q.held) == 0 {
		return nil
	}
	q.delay.Force(q.registry.Start(0))
	return q.release()
}

// Held reports how many packets are waiting for the delay to be known.
func (q *ReorderQueue) Held() int {
	return len(q.held)
}

func (q *ReorderQueue) release() []ports.Packet {
	delay, _ := q.delay.Delay()
	depth := int64(q.delay.Depth())

	out := q.held
	q.held = nil
	for i := range out {
		// The registry is indexed by cumulative output position, not by
		// this packet's own token: output timestamps are rearranged
		// relative to submission order.
		if q.out < depth {
			out[i].RenderOffset = q.registry.Start(q.out) - delay
		} else {
			out[i].RenderOffset = q.registry.Start(q.out - depth)
		}
		q.out++
	}
	return out
}
