package mp4sink

import (
	"bytes"
	"testing"

	"github.com/user/framepace/pkg/adapters/mp4source"
	"github.com/user/framepace/pkg/ports"
)

func testPackets(n int) []ports.Packet {
	packets := make([]ports.Packet, 0, n)
	start := int64(0)
	for i := 0; i < n; i++ {
		dur := int64(512)
		p := ports.Packet{
			Data:         []byte{0xAA, byte(i)},
			Start:        start,
			Stop:         start + dur,
			Duration:     dur,
			RenderOffset: start,
			Flags:        ports.FlagReference,
		}
		if i == 0 {
			p.Flags |= ports.FlagKey
		}
		packets = append(packets, p)
		start += dur
	}
	return packets
}

func TestSink_RoundTrip(t *testing.T) {
	sink := New()
	info := ports.StreamInfo{Timescale: 12800, Width: 640, Height: 360}
	if err := sink.Begin(info); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	packets := testPackets(8)
	for i, p := range packets {
		if err := sink.WritePacket(p); err != nil {
			t.Fatalf("WritePacket %d: %v", i, err)
		}
	}

	data, err := sink.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty container")
	}

	frames, gotInfo, err := mp4source.New().ReadFramesFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if gotInfo.Timescale != info.Timescale {
		t.Errorf("timescale = %d, want %d", gotInfo.Timescale, info.Timescale)
	}
	if len(frames) != len(packets) {
		t.Fatalf("read %d frames, want %d", len(frames), len(packets))
	}
	for i, f := range frames {
		if f.Start != packets[i].Start {
			t.Errorf("frame %d: Start = %d, want %d", i, f.Start, packets[i].Start)
		}
		if f.Duration() != packets[i].Duration {
			t.Errorf("frame %d: Duration = %d, want %d", i, f.Duration(), packets[i].Duration)
		}
	}
}

func TestSink_NegativeRenderOffsetShifted(t *testing.T) {
	// Startup packets carry negative DTS; decode times in the container
	// must be shifted to start at zero.
	sink := New()
	if err := sink.Begin(ports.StreamInfo{Timescale: 1000, Width: 320, Height: 240}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	packets := testPackets(4)
	for i := range packets {
		packets[i].RenderOffset -= 2000
	}
	for i, p := range packets {
		if err := sink.WritePacket(p); err != nil {
			t.Fatalf("WritePacket %d: %v", i, err)
		}
	}

	data, err := sink.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty container")
	}
}

func TestSink_RequiresBegin(t *testing.T) {
	sink := New()
	if err := sink.WritePacket(ports.Packet{}); err == nil {
		t.Error("WritePacket before Begin should fail")
	}
	if _, err := sink.End(); err == nil {
		t.Error("End before Begin should fail")
	}
}

func TestSink_RejectsZeroTimescale(t *testing.T) {
	sink := New()
	if err := sink.Begin(ports.StreamInfo{Timescale: 0}); err == nil {
		t.Error("zero timescale accepted")
	}
}
