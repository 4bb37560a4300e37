// Package mux implements the container writing stage.
package mux

import (
	"context"
	"fmt"

	"github.com/user/framepace/pkg/pipeline"
	"github.com/user/framepace/pkg/ports"
)

// Stage writes paced packets into a container through a PacketSink.
type Stage struct {
	sink ports.PacketSink
	log  ports.Logger
}

// NewStage creates a mux stage.
func NewStage(sink ports.PacketSink, log ports.Logger) *Stage {
	return &Stage{
		sink: sink,
		log:  log,
	}
}

// Execute writes all packets and finalizes the container.
func (s *Stage) Execute(ctx context.Context, input pipeline.MuxInput) (pipeline.MuxResult, error) {
	result := pipeline.MuxResult{}

	if len(input.Packets) == 0 {
		return result, fmt.Errorf("no packets to mux")
	}

	if err := s.sink.Begin(input.Info); err != nil {
		return result, fmt.Errorf("begin sink: %w", err)
	}

	var last int64
	for i, p := range input.Packets {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.sink.WritePacket(p); err != nil {
			return result, fmt.Errorf("write packet %d: %w", i, err)
		}
		if p.Stop > last {
			last = p.Stop
		}
	}

	data, err := s.sink.End()
	if err != nil {
		return result, fmt.Errorf("end sink: %w", err)
	}

	result.Data = data
	result.FileSize = int64(len(data))
	result.DurationTicks = last

	s.log.Debug("Muxed %d packets, %d bytes", len(input.Packets), result.FileSize)
	return result, nil
}
