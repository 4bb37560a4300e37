// Package pace implements the timestamp pacing stage.
package pace

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/framepace/pkg/pacing"
	"github.com/user/framepace/pkg/pipeline"
	"github.com/user/framepace/pkg/ports"
)

// Stage drives frames through the encoder and the pacing layer.
type Stage struct {
	encoder  ports.FrameEncoder
	chapters ports.ChapterQueue
	log      ports.Logger
}

// NewStage creates a pace stage. chapters may be nil for in-memory
// chapter tracking.
func NewStage(encoder ports.FrameEncoder, chapters ports.ChapterQueue, log ports.Logger) *Stage {
	if chapters == nil {
		chapters = pacing.NewChapterSync()
	}
	return &Stage{
		encoder:  encoder,
		chapters: chapters,
		log:      log,
	}
}

// Execute submits every frame, drains the encoder, and flushes at end
// of stream.
func (s *Stage) Execute(ctx context.Context, input pipeline.PaceInput) (pipeline.PaceResult, error) {
	result := pipeline.PaceResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to pace")
	}

	if err := s.encoder.Begin(input.Options); err != nil {
		return result, fmt.Errorf("begin encoder: %w", err)
	}

	pacer, err := pacing.NewPacer(s.encoder, input.ReorderDepth, s.chapters, s.log)
	if err != nil {
		return result, fmt.Errorf("create pacer: %w", err)
	}

	var stats strings.Builder
	for i, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		packets, err := pacer.SubmitFrame(frame)
		if err != nil {
			return result, fmt.Errorf("pace frame %d: %w", i, err)
		}
		result.Packets = append(result.Packets, packets...)
		stats.WriteString(s.encoder.Stats())
	}

	packets, err := pacer.Flush()
	if err != nil {
		return result, fmt.Errorf("flush: %w", err)
	}
	result.Packets = append(result.Packets, packets...)
	stats.WriteString(s.encoder.Stats())
	result.StatsLog = stats.String()

	if delay, known := pacer.DtsDelay(); known {
		result.DtsDelay = delay
	}
	result.UnresolvedChapters = s.chapters.Pending()

	s.log.Debug("Paced %d frames into %d packets", len(input.Frames), len(result.Packets))
	return result, nil
}
