// Package mp4source reads frame timing and payloads from a fragmented
// MP4 file using mp4ff, producing presentation-ordered frames for the
// pacing pipeline.
package mp4source

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/framepace/pkg/ports"
)

// Source implements ports.FrameSource for fragmented MP4 files.
type Source struct{}

// New creates an MP4 frame source.
func New() *Source {
	return &Source{}
}

// ReadFrames reads all frames from an MP4 file.
func (s *Source) ReadFrames(path string) ([]ports.Frame, ports.StreamInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ports.StreamInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return s.ReadFramesFromReader(f)
}

// ReadFramesFromReader reads all frames from an io.ReadSeeker.
func (s *Source) ReadFramesFromReader(reader io.ReadSeeker) ([]ports.Frame, ports.StreamInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return nil, ports.StreamInfo{}, fmt.Errorf("decode mp4: %w", err)
	}
	if !mp4File.IsFragmented() {
		return nil, ports.StreamInfo{}, fmt.Errorf("progressive MP4 not supported, use fragmented MP4")
	}

	info := ports.StreamInfo{Timescale: 1000}

	// Find the video track, its timescale and trex.
	var videoTrackID uint32
	var trex *mp4.TrexBox
	if mp4File.Init != nil && mp4File.Init.Moov != nil {
		for _, trak := range mp4File.Init.Moov.Traks {
			if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
				videoTrackID = trak.Tkhd.TrackID
				if trak.Mdia.Mdhd != nil {
					info.Timescale = trak.Mdia.Mdhd.Timescale
				}
				info.Width = int(trak.Tkhd.Width >> 16)
				info.Height = int(trak.Tkhd.Height >> 16)
				break
			}
		}
		if mp4File.Init.Moov.Mvex != nil {
			for _, t := range mp4File.Init.Moov.Mvex.Trexs {
				if t.TrackID == videoTrackID {
					trex = t
					break
				}
			}
		}
	}
	if videoTrackID == 0 {
		return nil, ports.StreamInfo{}, fmt.Errorf("no video track found")
	}

	var frames []ports.Frame
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != videoTrackID {
					continue
				}

				var baseDecodeTime uint64
				if traf.Tfdt != nil {
					baseDecodeTime = traf.Tfdt.BaseMediaDecodeTime()
				}

				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return nil, ports.StreamInfo{}, fmt.Errorf("get samples: %w", err)
				}

				decodeTime := baseDecodeTime
				for _, sample := range samples {
					// Presentation time, in case the file itself
					// carries reordered samples.
					start := int64(decodeTime) + int64(sample.CompositionTimeOffset)
					frames = append(frames, ports.Frame{
						Planes: [][]byte{sample.Data},
						Start:  start,
						Stop:   start + int64(sample.Dur),
					})
					decodeTime += uint64(sample.Dur)
				}
			}
		}
	}

	if len(frames) == 0 {
		return nil, ports.StreamInfo{}, fmt.Errorf("no samples in video track")
	}

	// The pacer wants strictly increasing presentation order.
	sort.Slice(frames, func(i, j int) bool { return frames[i].Start < frames[j].Start })

	return frames, info, nil
}

var _ ports.FrameSource = (*Source)(nil)
