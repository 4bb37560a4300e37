package pacing

import (
	"fmt"

	"github.com/user/framepace/pkg/ports"
)

// Pacer drives a reordering encoder one frame at a time and turns its
// coded-order output back into correctly timed packets. It owns the
// frame info registry, the delay estimator and the reorder queue; the
// chapter queue may be supplied externally.
type Pacer struct {
	enc      ports.FrameEncoder
	chapters ports.ChapterQueue
	log      ports.Logger

	registry FrameInfoRegistry
	delay    *DelayEstimator
	reorder  *ReorderQueue

	framesIn  int64
	lastStart int64
}

// NewPacer returns a pacer for an encoder with the given reorder depth.
// The depth comes from whoever configured the encoder, already adjusted
// by any encoder-family policy. A nil chapters queue gets an in-memory
// ChapterSync.
func NewPacer(enc ports.FrameEncoder, depth int, chapters ports.ChapterQueue, log ports.Logger) (*Pacer, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if chapters == nil {
		chapters = NewChapterSync()
	}
	p := &Pacer{
		enc:      enc,
		chapters: chapters,
		log:      log.WithComponent("pacer"),
		delay:    NewDelayEstimator(depth),
	}
	p.reorder = NewReorderQueue(&p.registry, p.delay)
	return p, nil
}

// SubmitFrame hands one frame to the encoder and returns every packet
// that became ready as a result, in decode order. Zero packets is
// normal while the encoder is still filling its lookahead.
func (p *Pacer) SubmitFrame(f ports.Frame) ([]ports.Packet, error) {
	if f.Stop <= f.Start {
		return nil, fmt.Errorf("%w: start %d stop %d", ErrMalformedFrame, f.Start, f.Stop)
	}
	if p.framesIn > 0 && f.Start <= p.lastStart {
		return nil, fmt.Errorf("%w: %d after %d", ErrNonMonotonicStart, f.Start, p.lastStart)
	}
	p.lastStart = f.Start

	seq := p.framesIn
	p.registry.Record(seq, f.Start, f.Duration())
	p.delay.Observe(seq, f.Start)
	if p.delay.Depth() > 0 && seq == int64(p.delay.Depth()) {
		p.log.Debug("Reorder delay fixed at %d (frame %d)", f.Start, seq)
	}

	// Chapters must start on a self-contained frame, so ask the encoder
	// to code this one as a keyframe. It may sit buffered behind other
	// frames for a while; the queued mark pairs it back up when the
	// keyframe finally emerges.
	force := false
	if f.Chapter > 0 {
		p.chapters.Enqueue(seq, f.Chapter)
		force = true
		p.log.Debug("Chapter %d requested at frame %d", f.Chapter, seq)
	}

	p.framesIn++
	if err := p.enc.Submit(f, seq, force); err != nil {
		return nil, fmt.Errorf("submit frame %d: %w", seq, err)
	}
	return p.drain()
}

// Flush signals end of stream to the encoder, drains its remaining
// packets, and releases anything the reorder queue still holds. No
// packet is dropped: if the stream ended before the reorder delay was
// captured, the delay is derived from the frames actually submitted.
func (p *Pacer) Flush() ([]ports.Packet, error) {
	if err := p.enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush encoder: %w", err)
	}
	out, err := p.drain()
	if err != nil {
		return out, err
	}
	out = append(out, p.reorder.Flush()...)

	if n := p.chapters.Pending(); n > 0 {
		// The encoder never produced keyframes for these marks. There
		// is no packet left to attach them to; surface it rather than
		// inventing boundaries.
		p.log.Warn("%d chapter marks left unresolved at end of stream", n)
	}
	return out, nil
}

// DtsDelay returns the captured reorder delay. known is false until
// enough frames have been submitted (or the stream was flushed).
func (p *Pacer) DtsDelay() (int64, bool) {
	return p.delay.Delay()
}

// FramesSubmitted returns how many frames have been handed to the
// encoder so far.
func (p *Pacer) FramesSubmitted() int64 {
	return p.framesIn
}

// drain pulls packets out of the encoder until it reports none ready,
// resolving timing for each and feeding it through the reorder queue.
func (p *Pacer) drain() ([]ports.Packet, error) {
	var out []ports.Packet
	for {
		ep, ok, err := p.enc.Receive()
		if err != nil {
			return out, fmt.Errorf("receive packet: %w", err)
		}
		if !ok {
			return out, nil
		}

		if ep.Token >= p.framesIn || ep.Token < p.framesIn-InfoWindow {
			return out, fmt.Errorf("%w: token %d, frames in %d", ErrStaleToken, ep.Token, p.framesIn)
		}

		pkt := ports.Packet{
			Data:     ep.Data,
			Start:    p.registry.Start(ep.Token),
			Duration: p.registry.Duration(ep.Token),
			Flags:    ports.FlagReference,
		}
		pkt.Stop = pkt.Start + pkt.Duration
		if ep.Keyframe {
			pkt.Flags |= ports.FlagKey
			if chapter, ok := p.chapters.Dequeue(); ok {
				pkt.Chapter = chapter
				p.log.Debug("Chapter %d attached to keyframe (frame %d)", chapter, ep.Token)
			}
		}

		out = append(out, p.reorder.Process(pkt)...)
	}
}
