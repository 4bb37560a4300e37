// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/framepace/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveJobJSON saves the resolved job configuration as JSON.
func (s *Sink) SaveJobJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "job.json")
	return s.fs.WriteFile(path, data)
}

// SavePacketReport saves the per-packet timing report as JSON.
func (s *Sink) SavePacketReport(data []byte) error {
	path := filepath.Join(s.baseDir, "packets.json")
	return s.fs.WriteFile(path, data)
}

// SaveTimeline saves the PTS/DTS timeline chart as PNG.
func (s *Sink) SaveTimeline(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	path := filepath.Join(s.baseDir, "timeline.png")
	return s.fs.WriteFile(path, buf.Bytes())
}

// SaveStatsLog saves the encoder's rate-control statistics.
func (s *Sink) SaveStatsLog(data []byte) error {
	path := filepath.Join(s.baseDir, "stats.log")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
