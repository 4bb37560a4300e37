// Package simencoder provides a pure-Go frame encoder that mimics the
// output behavior of a lookahead encoder: it buffers frames, emits
// packets in coded order rather than display order, and echoes each
// frame's token back on its packet. It performs no actual compression;
// frame payloads pass through untouched.
//
// With reorder depth d the emission pattern matches a classic
// IBB..P stream: the first frame comes out alone once d+1 frames are
// buffered, then every full mini-GOP emits its anchor first followed by
// the d frames that display before it. For d=2 the coded token order is
// 0, 3, 1, 2, 6, 4, 5, ...
package simencoder

import (
	"bytes"
	"fmt"

	"github.com/user/framepace/pkg/ports"
)

type pendingFrame struct {
	frame ports.Frame
	token int64
	force bool
}

// Encoder implements ports.FrameEncoder with simulated reordering.
type Encoder struct {
	depth int
	gop   int

	opts   ports.EncoderOptions
	buf    []pendingFrame
	ready  []ports.EncodedPacket
	primed bool

	framesIn   int64
	packetsOut int64
	stats      string
}

// New creates an encoder with the given reorder depth and keyframe
// cadence. gop 0 disables cadence keyframes; the first frame and forced
// frames are always keyframes.
func New(depth, gop int) *Encoder {
	return &Encoder{depth: depth, gop: gop}
}

// Begin resets the encoder for a new stream.
func (e *Encoder) Begin(opts ports.EncoderOptions) error {
	if e.depth < 0 {
		return fmt.Errorf("simencoder: invalid reorder depth %d", e.depth)
	}
	e.opts = opts
	e.buf = nil
	e.ready = nil
	e.primed = false
	e.framesIn = 0
	e.packetsOut = 0
	e.stats = ""
	if opts.GopSize > 0 {
		e.gop = opts.GopSize
	}
	return nil
}

// ReorderDepth reports the configured lookahead.
func (e *Encoder) ReorderDepth() int {
	return e.depth
}

// Submit buffers one frame and moves any completed mini-GOPs to the
// ready queue.
func (e *Encoder) Submit(frame ports.Frame, token int64, forceKeyframe bool) error {
	e.framesIn++
	e.buf = append(e.buf, pendingFrame{frame: frame, token: token, force: forceKeyframe})
	e.step()
	return nil
}

// Receive pops the next ready packet.
func (e *Encoder) Receive() (ports.EncodedPacket, bool, error) {
	if len(e.ready) == 0 {
		return ports.EncodedPacket{}, false, nil
	}
	pkt := e.ready[0]
	e.ready = e.ready[1:]
	return pkt, true, nil
}

// Flush drains every buffered frame in display order. Frames past the
// last full mini-GOP have no later anchor to reference, so coded order
// equals display order for the tail.
func (e *Encoder) Flush() error {
	for _, p := range e.buf {
		e.emit(p)
	}
	e.buf = nil
	e.stats = fmt.Sprintf("frames=%d packets=%d depth=%d\n", e.framesIn, e.packetsOut, e.depth)
	return nil
}

// Stats returns the summary produced at flush, once.
func (e *Encoder) Stats() string {
	s := e.stats
	e.stats = ""
	return s
}

func (e *Encoder) step() {
	if e.depth == 0 {
		for _, p := range e.buf {
			e.emit(p)
		}
		e.buf = nil
		return
	}

	// The first packet appears once the lookahead is full.
	if !e.primed && len(e.buf) == e.depth+1 {
		e.emit(e.buf[0])
		e.buf = e.buf[1:]
		e.primed = true
	}

	// Anchor first, then the frames that display before it.
	for e.primed && len(e.buf) >= e.depth+1 {
		e.emit(e.buf[e.depth])
		for i := 0; i < e.depth; i++ {
			e.emit(e.buf[i])
		}
		e.buf = e.buf[e.depth+1:]
	}
}

func (e *Encoder) emit(p pendingFrame) {
	key := p.token == 0 || p.force || (e.gop > 0 && p.token%int64(e.gop) == 0)

	data := bytes.Join(p.frame.Planes, nil)
	if len(data) == 0 {
		data = fmt.Appendf(nil, "frame-%d", p.token)
	}

	e.ready = append(e.ready, ports.EncodedPacket{
		Data:     data,
		Token:    p.token,
		Keyframe: key,
	})
	e.packetsOut++
}

var _ ports.FrameEncoder = (*Encoder)(nil)
