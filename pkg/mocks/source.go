package mocks

import (
	"io"

	"github.com/user/framepace/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource returning
// preset frames.
type FrameSource struct {
	Frames []ports.Frame
	Info   ports.StreamInfo
	Err    error

	ReadFramesFunc func(path string) ([]ports.Frame, ports.StreamInfo, error)
}

func (m *FrameSource) ReadFrames(path string) ([]ports.Frame, ports.StreamInfo, error) {
	if m.ReadFramesFunc != nil {
		return m.ReadFramesFunc(path)
	}
	return m.Frames, m.Info, m.Err
}

func (m *FrameSource) ReadFramesFromReader(reader io.ReadSeeker) ([]ports.Frame, ports.StreamInfo, error) {
	return m.Frames, m.Info, m.Err
}

var _ ports.FrameSource = (*FrameSource)(nil)
