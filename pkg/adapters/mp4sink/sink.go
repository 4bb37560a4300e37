// Package mp4sink writes paced packets into a fragmented MP4 container
// using mp4ff. Decode times come from the packet render offsets, and
// the PTS/DTS difference is preserved as the sample composition offset.
package mp4sink

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/av1"
	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/framepace/pkg/ports"
)

// Sink implements ports.PacketSink backed by an in-memory MP4 builder.
type Sink struct {
	info    ports.StreamInfo
	packets []ports.Packet
	began   bool
}

// New creates an MP4 packet sink.
func New() *Sink {
	return &Sink{}
}

// Begin initializes the sink for a new stream.
func (s *Sink) Begin(info ports.StreamInfo) error {
	if info.Timescale == 0 {
		return fmt.Errorf("mp4sink: timescale must be positive")
	}
	s.info = info
	s.packets = nil
	s.began = true
	return nil
}

// WritePacket collects one packet. Packets arrive in decode order; the
// container is assembled at End.
func (s *Sink) WritePacket(p ports.Packet) error {
	if !s.began {
		return fmt.Errorf("mp4sink: Begin not called")
	}
	s.packets = append(s.packets, p)
	return nil
}

// End assembles and returns the MP4 data.
func (s *Sink) End() ([]byte, error) {
	if !s.began {
		return nil, fmt.Errorf("mp4sink: Begin not called")
	}
	if len(s.packets) == 0 {
		return nil, fmt.Errorf("mp4sink: no packets to mux")
	}

	trackID := uint32(1)

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(s.info.Timescale, "video", "en")

	trak := init.Moov.Trak

	entry := mp4.CreateVisualSampleEntryBox("av01",
		uint16(s.info.Width), uint16(s.info.Height), emptyAV1Config())
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	trak.Tkhd.Width = mp4.Fixed32(s.info.Width << 16)
	trak.Tkhd.Height = mp4.Fixed32(s.info.Height << 16)

	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	// Decode times must not go negative: the startup transient is
	// shifted up by the first packet's render offset.
	base := s.packets[0].RenderOffset

	for _, p := range s.packets {
		flags := mp4.NonSyncSampleFlags
		if p.Flags&ports.FlagKey != 0 {
			flags = mp4.SyncSampleFlags
		}

		dts := p.RenderOffset - base
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags:                 flags,
				Size:                  uint32(len(p.Data)),
				Dur:                   uint32(p.Duration),
				CompositionTimeOffset: int32(p.Start - p.RenderOffset),
			},
			DecodeTime: uint64(dts),
			Data:       p.Data,
		})
	}

	var buf bytes.Buffer

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "av01", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}

	return buf.Bytes(), nil
}

// emptyAV1Config builds a placeholder codec configuration record. The
// pacing layer never inspects payloads, so there is no sequence header
// to extract.
func emptyAV1Config() *mp4.Av1CBox {
	return &mp4.Av1CBox{
		CodecConfRec: av1.CodecConfRec{
			Version:            1,
			SeqLevelIdx0:       8,
			ChromaSubsamplingX: 1,
			ChromaSubsamplingY: 1,
		},
	}
}

var _ ports.PacketSink = (*Sink)(nil)
