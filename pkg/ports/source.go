package ports

import (
	"io"
)

// FrameSource abstracts where input frames and their timing come from.
type FrameSource interface {
	// ReadFrames reads all frames from a file.
	ReadFrames(path string) ([]Frame, StreamInfo, error)

	// ReadFramesFromReader reads all frames from an io.ReadSeeker.
	ReadFramesFromReader(reader io.ReadSeeker) ([]Frame, StreamInfo, error)
}
