// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/user/framepace/pkg/pipeline"
	"github.com/user/framepace/pkg/ports"
)

// ChapterMark places a chapter boundary at a frame index.
type ChapterMark struct {
	Frame int `json:"frame"`
	ID    int `json:"id"`
}

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input/Output
	InputPath  string
	OutputPath string

	// Pacing
	// ReorderDepth is the resolved encoder lookahead. The depth policy
	// has already been applied by the caller.
	ReorderDepth int
	Chapters     []ChapterMark

	// Encoding
	Width   int // 0 means keep the source dimensions
	Height  int
	Bitrate int
	Quality int
	GopSize int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ReorderDepth: 2,
		Bitrate:      2000,
		Quality:      25,
		GopSize:      60,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	source    ports.FrameSource
	paceStage pipeline.Stage[pipeline.PaceInput, pipeline.PaceResult]
	muxStage  pipeline.Stage[pipeline.MuxInput, pipeline.MuxResult]
	fs        ports.FileSystem
	sink      ports.DebugSink
	chart     ports.ChartRenderer
	logger    ports.Logger
}

// New creates a new Orchestrator. chart may be nil when the debug sink
// is disabled.
func New(
	source ports.FrameSource,
	paceStage pipeline.Stage[pipeline.PaceInput, pipeline.PaceResult],
	muxStage pipeline.Stage[pipeline.MuxInput, pipeline.MuxResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	chart ports.ChartRenderer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:    source,
		paceStage: paceStage,
		muxStage:  muxStage,
		fs:        fs,
		sink:      sink,
		chart:     chart,
		logger:    logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Read input frames
	frames, info, err := o.source.ReadFrames(config.InputPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read input: %s", err))
		return RunResult{}, fmt.Errorf("read input: %w", err)
	}
	o.logger.Info(l10n.F("Read %d frames from %s", len(frames), config.InputPath))
	o.logger.Info(l10n.F("Stream: %dx%d, timescale %d", info.Width, info.Height, info.Timescale))

	// 2. Apply chapter marks
	if err := applyChapters(frames, config.Chapters); err != nil {
		return RunResult{}, err
	}

	// Save resolved job debug output
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(jobReport(config, info, len(frames)), "", "  "); err == nil {
			o.sink.SaveJobJSON(data)
		}
	}

	// 3. Pace frames through the encoder
	o.logger.Info(l10n.F("Pacing %d frames (reorder depth %d)", len(frames), config.ReorderDepth))
	paceInput := o.buildPaceInput(config, info, frames)
	paced, err := o.paceStage.Execute(ctx, paceInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to pace stream: %s", err))
		return RunResult{}, fmt.Errorf("pace stage: %w", err)
	}

	// Save pacing debug output
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(packetReports(paced.Packets), "", "  "); err == nil {
			o.sink.SavePacketReport(data)
		}
		if o.chart != nil {
			o.sink.SaveTimeline(o.chart.Render(paced.Packets))
		}
		if paced.StatsLog != "" {
			o.sink.SaveStatsLog([]byte(paced.StatsLog))
		}
	}

	// 4. Mux packets into the output container
	o.logger.Info(l10n.F("Muxing %d packets", len(paced.Packets)))
	muxed, err := o.muxStage.Execute(ctx, pipeline.MuxInput{
		Packets: paced.Packets,
		Info:    info,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to mux output: %s", err))
		return RunResult{}, fmt.Errorf("mux stage: %w", err)
	}

	// 5. Write output file
	if err := o.fs.WriteFile(config.OutputPath, muxed.Data); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))

	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		FrameCount:         len(frames),
		PacketCount:        len(paced.Packets),
		DtsDelay:           paced.DtsDelay,
		ReorderDepth:       config.ReorderDepth,
		UnresolvedChapters: paced.UnresolvedChapters,
		DurationTicks:      muxed.DurationTicks,
		Timescale:          info.Timescale,
		Width:              info.Width,
		Height:             info.Height,
		FileSize:           muxed.FileSize,
	}, nil
}

func (o *Orchestrator) buildPaceInput(config Config, info ports.StreamInfo, frames []ports.Frame) pipeline.PaceInput {
	width, height := info.Width, info.Height
	if config.Width > 0 {
		width = config.Width
	}
	if config.Height > 0 {
		height = config.Height
	}

	return pipeline.PaceInput{
		Frames:       frames,
		ReorderDepth: config.ReorderDepth,
		Options: ports.EncoderOptions{
			Width:   width,
			Height:  height,
			Bitrate: config.Bitrate,
			Quality: config.Quality,
			GopSize: config.GopSize,
		},
	}
}

func applyChapters(frames []ports.Frame, marks []ChapterMark) error {
	for _, m := range marks {
		if m.Frame < 0 || m.Frame >= len(frames) {
			return fmt.Errorf("chapter %d: frame index %d out of range (0..%d)", m.ID, m.Frame, len(frames)-1)
		}
		frames[m.Frame].Chapter = m.ID
	}
	return nil
}

func packetReports(packets []ports.Packet) []pipeline.PacketReport {
	reports := make([]pipeline.PacketReport, len(packets))
	for i, p := range packets {
		reports[i] = pipeline.PacketReport{
			Index:        i,
			Start:        p.Start,
			Stop:         p.Stop,
			Duration:     p.Duration,
			RenderOffset: p.RenderOffset,
			Keyframe:     p.Flags&ports.FlagKey != 0,
			Chapter:      p.Chapter,
			Size:         len(p.Data),
		}
	}
	return reports
}

// jobSummary is the resolved job configuration saved to the debug sink.
type jobSummary struct {
	InputPath    string        `json:"input"`
	OutputPath   string        `json:"output"`
	ReorderDepth int           `json:"reorder_depth"`
	Chapters     []ChapterMark `json:"chapters,omitempty"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Bitrate      int           `json:"bitrate"`
	Quality      int           `json:"quality"`
	GopSize      int           `json:"gop_size"`
	Timescale    uint32        `json:"timescale"`
	FrameCount   int           `json:"frame_count"`
}

func jobReport(config Config, info ports.StreamInfo, frameCount int) jobSummary {
	return jobSummary{
		InputPath:    config.InputPath,
		OutputPath:   config.OutputPath,
		ReorderDepth: config.ReorderDepth,
		Chapters:     config.Chapters,
		Width:        config.Width,
		Height:       config.Height,
		Bitrate:      config.Bitrate,
		Quality:      config.Quality,
		GopSize:      config.GopSize,
		Timescale:    info.Timescale,
		FrameCount:   frameCount,
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Stream information
	FrameCount  int
	PacketCount int
	Timescale   uint32
	Width       int
	Height      int

	// Pacing information
	DtsDelay           int64
	ReorderDepth       int
	UnresolvedChapters int

	// Output information
	DurationTicks int64
	FileSize      int64
}
