// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/framepace/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveJobJSON does nothing.
func (s *Sink) SaveJobJSON(data []byte) error {
	return nil
}

// SavePacketReport does nothing.
func (s *Sink) SavePacketReport(data []byte) error {
	return nil
}

// SaveTimeline does nothing.
func (s *Sink) SaveTimeline(img image.Image) error {
	return nil
}

// SaveStatsLog does nothing.
func (s *Sink) SaveStatsLog(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
