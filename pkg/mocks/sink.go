package mocks

import (
	"image"
	"sync"

	"github.com/user/framepace/pkg/ports"
)

// PacketSink is a mock implementation of ports.PacketSink that records
// everything written to it.
type PacketSink struct {
	BeginFunc       func(info ports.StreamInfo) error
	WritePacketFunc func(p ports.Packet) error
	EndFunc         func() ([]byte, error)

	// Recorded calls for verification
	BeginInfo *ports.StreamInfo
	Packets   []ports.Packet
	EndCalled bool
}

func (m *PacketSink) Begin(info ports.StreamInfo) error {
	m.BeginInfo = &info
	if m.BeginFunc != nil {
		return m.BeginFunc(info)
	}
	return nil
}

func (m *PacketSink) WritePacket(p ports.Packet) error {
	m.Packets = append(m.Packets, p)
	if m.WritePacketFunc != nil {
		return m.WritePacketFunc(p)
	}
	return nil
}

func (m *PacketSink) End() ([]byte, error) {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'}, nil
}

var _ ports.PacketSink = (*PacketSink)(nil)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	JobJSON      []byte
	PacketReport []byte
	Timeline     image.Image
	StatsLog     []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveJobJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JobJSON = data
	return nil
}

func (m *DebugSink) SavePacketReport(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PacketReport = data
	return nil
}

func (m *DebugSink) SaveTimeline(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timeline = img
	return nil
}

func (m *DebugSink) SaveStatsLog(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsLog = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
