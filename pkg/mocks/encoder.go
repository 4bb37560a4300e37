// Package mocks provides mock implementations for testing.
package mocks

import (
	"github.com/user/framepace/pkg/ports"
)

// FrameEncoder is a mock implementation of ports.FrameEncoder. By
// default it emits one packet per submitted frame, in submission order,
// echoing the token. Scripted behavior is injected through the func
// fields.
type FrameEncoder struct {
	BeginFunc   func(opts ports.EncoderOptions) error
	SubmitFunc  func(frame ports.Frame, token int64, forceKeyframe bool) error
	ReceiveFunc func() (ports.EncodedPacket, bool, error)
	FlushFunc   func() error
	StatsFunc   func() string

	Depth int

	// Recorded calls for verification
	BeginCalled bool
	SubmitCalls []SubmitCall
	FlushCalled bool

	queue []ports.EncodedPacket
}

// SubmitCall records a call to Submit.
type SubmitCall struct {
	Token         int64
	Start         int64
	ForceKeyframe bool
}

func (m *FrameEncoder) Begin(opts ports.EncoderOptions) error {
	m.BeginCalled = true
	if m.BeginFunc != nil {
		return m.BeginFunc(opts)
	}
	return nil
}

func (m *FrameEncoder) ReorderDepth() int {
	return m.Depth
}

func (m *FrameEncoder) Submit(frame ports.Frame, token int64, forceKeyframe bool) error {
	m.SubmitCalls = append(m.SubmitCalls, SubmitCall{
		Token:         token,
		Start:         frame.Start,
		ForceKeyframe: forceKeyframe,
	})
	if m.SubmitFunc != nil {
		return m.SubmitFunc(frame, token, forceKeyframe)
	}
	m.queue = append(m.queue, ports.EncodedPacket{
		Data:     []byte{byte(token)},
		Token:    token,
		Keyframe: token == 0 || forceKeyframe,
	})
	return nil
}

func (m *FrameEncoder) Receive() (ports.EncodedPacket, bool, error) {
	if m.ReceiveFunc != nil {
		return m.ReceiveFunc()
	}
	if len(m.queue) == 0 {
		return ports.EncodedPacket{}, false, nil
	}
	pkt := m.queue[0]
	m.queue = m.queue[1:]
	return pkt, true, nil
}

// Enqueue scripts a packet for the default Receive implementation.
func (m *FrameEncoder) Enqueue(pkt ports.EncodedPacket) {
	m.queue = append(m.queue, pkt)
}

func (m *FrameEncoder) Flush() error {
	m.FlushCalled = true
	if m.FlushFunc != nil {
		return m.FlushFunc()
	}
	return nil
}

func (m *FrameEncoder) Stats() string {
	if m.StatsFunc != nil {
		return m.StatsFunc()
	}
	return ""
}

var _ ports.FrameEncoder = (*FrameEncoder)(nil)
