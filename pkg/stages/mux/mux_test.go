package mux

import (
	"context"
	"errors"
	"testing"

	"github.com/user/framepace/pkg/adapters/logger"
	"github.com/user/framepace/pkg/mocks"
	"github.com/user/framepace/pkg/pipeline"
	"github.com/user/framepace/pkg/ports"
)

func testPackets() []ports.Packet {
	return []ports.Packet{
		{Data: []byte{1}, Start: 0, Stop: 512, Duration: 512, RenderOffset: -1024, Flags: ports.FlagKey | ports.FlagReference},
		{Data: []byte{2}, Start: 512, Stop: 1024, Duration: 512, RenderOffset: -512, Flags: ports.FlagReference},
		{Data: []byte{3}, Start: 1024, Stop: 1536, Duration: 512, RenderOffset: 0, Flags: ports.FlagReference},
	}
}

func TestStage_Execute(t *testing.T) {
	sink := &mocks.PacketSink{}
	stage := NewStage(sink, logger.NewNoop())

	info := ports.StreamInfo{Timescale: 12800, Width: 640, Height: 360}
	result, err := stage.Execute(context.Background(), pipeline.MuxInput{
		Packets: testPackets(),
		Info:    info,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sink.BeginInfo == nil || sink.BeginInfo.Timescale != 12800 {
		t.Errorf("BeginInfo = %+v, want timescale 12800", sink.BeginInfo)
	}
	if len(sink.Packets) != 3 {
		t.Fatalf("len(sink.Packets) = %d, want 3", len(sink.Packets))
	}
	if !sink.EndCalled {
		t.Error("expected End to be called")
	}

	if len(result.Data) == 0 {
		t.Error("expected container data")
	}
	if result.FileSize != int64(len(result.Data)) {
		t.Errorf("FileSize = %d, want %d", result.FileSize, len(result.Data))
	}
	if result.DurationTicks != 1536 {
		t.Errorf("DurationTicks = %d, want 1536", result.DurationTicks)
	}
}

func TestStage_Execute_PreservesDecodeOrder(t *testing.T) {
	sink := &mocks.PacketSink{}
	stage := NewStage(sink, logger.NewNoop())

	packets := testPackets()
	_, err := stage.Execute(context.Background(), pipeline.MuxInput{
		Packets: packets,
		Info:    ports.StreamInfo{Timescale: 12800, Width: 640, Height: 360},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, p := range sink.Packets {
		if p.Start != packets[i].Start {
			t.Errorf("packet %d written out of order: Start = %d, want %d", i, p.Start, packets[i].Start)
		}
	}
}

func TestStage_Execute_NoPackets(t *testing.T) {
	stage := NewStage(&mocks.PacketSink{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.MuxInput{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestStage_Execute_WriteError(t *testing.T) {
	sink := &mocks.PacketSink{
		WritePacketFunc: func(p ports.Packet) error {
			return errors.New("disk full")
		},
	}
	stage := NewStage(sink, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.MuxInput{
		Packets: testPackets(),
		Info:    ports.StreamInfo{Timescale: 12800},
	})
	if err == nil {
		t.Fatal("expected error from WritePacket")
	}
}

func TestStage_Execute_ContextCanceled(t *testing.T) {
	stage := NewStage(&mocks.PacketSink{}, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.MuxInput{
		Packets: testPackets(),
		Info:    ports.StreamInfo{Timescale: 12800},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
