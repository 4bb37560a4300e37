// Package main provides the CLI entry point for framepace.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framepace/pkg/adapters/filesink"
	"github.com/user/framepace/pkg/adapters/ggtimeline"
	"github.com/user/framepace/pkg/adapters/logger"
	"github.com/user/framepace/pkg/adapters/mp4sink"
	"github.com/user/framepace/pkg/adapters/mp4source"
	"github.com/user/framepace/pkg/adapters/nullsink"
	"github.com/user/framepace/pkg/adapters/osfilesystem"
	"github.com/user/framepace/pkg/adapters/simencoder"
	"github.com/user/framepace/pkg/config"
	"github.com/user/framepace/pkg/framepace"
	"github.com/user/framepace/pkg/orchestrator"
	"github.com/user/framepace/pkg/ports"
	"github.com/user/framepace/pkg/stages/mux"
	"github.com/user/framepace/pkg/stages/pace"
	"github.com/user/framepace/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "framepace",
		Usage:   l10n.T("Repace encoded video timestamps for reordering encoders"),
		Version: version,
		Commands: []*cli.Command{
			paceCommand(),
			probeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func paceCommand() *cli.Command {
	return &cli.Command{
		Name:      "pace",
		Usage:     l10n.T("Pace a fragmented MP4 through the encoder and remux it"),
		ArgsUsage: "INPUT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    l10n.T("Output MP4 file path"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:  "depth-policy",
				Usage: l10n.T("Reorder depth policy (as_reported, doubled, fixed)"),
			},
			&cli.IntFlag{
				Name:  "reorder-depth",
				Value: -1,
				Usage: l10n.T("Fixed reorder depth (implies fixed policy)"),
			},
			&cli.IntFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Value:   -1,
				Usage:   l10n.T("Video quality (CRF 0-63, lower is better)"),
			},
			&cli.IntFlag{
				Name:  "bitrate",
				Value: -1,
				Usage: l10n.T("Target bitrate in kbps"),
			},
			&cli.IntFlag{
				Name:  "gop",
				Value: -1,
				Usage: l10n.T("Keyframe interval in frames"),
			},
			&cli.StringSliceFlag{
				Name:  "chapter",
				Usage: l10n.T("Chapter mark as FRAME:ID (repeatable)"),
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: l10n.T("Output execution summary to file (Markdown format)"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Enable debug output"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Value: "./debug",
				Usage: l10n.T("Directory for debug output"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: runPace,
	}
}

func runPace(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("INPUT argument is required"))
	}

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	pacingCfg := cfg.ToPacingConfig()

	// The simulation encoder reorders by its configured lookahead. A
	// fixed policy pins the encoder itself to that depth.
	nativeDepth := 2
	if pacingCfg.DepthPolicy == framepace.DepthFixed {
		nativeDepth = pacingCfg.ReorderDepth
	}
	encoder := simencoder.New(nativeDepth, pacingCfg.GopSize)
	resolvedDepth := pacingCfg.ResolveDepth(encoder.ReorderDepth())

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	paceStage := pace.NewStage(encoder, nil, log)
	muxStage := mux.NewStage(mp4sink.New(), log)

	orch := orchestrator.New(
		mp4source.New(),
		paceStage,
		muxStage,
		fs,
		sink,
		ggtimeline.New(),
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig(resolvedDepth)

	log.Info(l10n.F("Pacing %s...", cfg.InputPath))

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		if err := writeSummary(path, cfg, result); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}

	return nil
}

// buildConfig merges the YAML config file with CLI overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.InputPath = c.Args().First()
	cfg.OutputPath = c.String("output")

	if policy := c.String("depth-policy"); policy != "" {
		cfg.DepthPolicy = policy
	}
	if depth := c.Int("reorder-depth"); depth >= 0 {
		cfg.DepthPolicy = string(framepace.DepthFixed)
		cfg.ReorderDepth = depth
	}
	if quality := c.Int("quality"); quality >= 0 {
		cfg.Quality = quality
	}
	if bitrate := c.Int("bitrate"); bitrate >= 0 {
		cfg.Bitrate = bitrate
	}
	if gop := c.Int("gop"); gop >= 0 {
		cfg.GopSize = gop
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if dir := c.String("debug-dir"); dir != "" {
		cfg.DebugDir = dir
	}

	for _, mark := range c.StringSlice("chapter") {
		ch, err := parseChapterMark(mark)
		if err != nil {
			return cfg, err
		}
		cfg.Chapters = append(cfg.Chapters, ch)
	}

	return cfg, nil
}

// parseChapterMark parses a FRAME:ID chapter flag value.
func parseChapterMark(s string) (config.ChapterConfig, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return config.ChapterConfig{}, fmt.Errorf("invalid chapter mark %q, expected FRAME:ID", s)
	}
	frame, err := strconv.Atoi(parts[0])
	if err != nil {
		return config.ChapterConfig{}, fmt.Errorf("invalid chapter frame %q: %w", parts[0], err)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return config.ChapterConfig{}, fmt.Errorf("invalid chapter id %q: %w", parts[1], err)
	}
	return config.ChapterConfig{Frame: frame, ID: id}, nil
}

func writeSummary(path string, cfg config.Config, result orchestrator.RunResult) error {
	summary := summarizer.NewBuilder().
		WithInput(summarizer.InputInfo{
			Path:       cfg.InputPath,
			FrameCount: result.FrameCount,
			Timescale:  result.Timescale,
			Width:      result.Width,
			Height:     result.Height,
		}).
		WithPacing(summarizer.PacingInfo{
			ReorderDepth:       result.ReorderDepth,
			DtsDelay:           result.DtsDelay,
			PacketCount:        result.PacketCount,
			UnresolvedChapters: result.UnresolvedChapters,
		}).
		WithSettings(summarizer.Settings{
			DepthPolicy: cfg.DepthPolicy,
			Quality:     cfg.Quality,
			Bitrate:     cfg.Bitrate,
			GopSize:     cfg.GopSize,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:          cfg.OutputPath,
			FileSize:      result.FileSize,
			DurationTicks: result.DurationTicks,
		}).
		Build()

	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
	return writer.Write(path, summary)
}

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Show stream information for a fragmented MP4"),
		ArgsUsage: "INPUT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New(l10n.T("INPUT argument is required"))
			}
			path := c.Args().First()

			frames, info, err := mp4source.New().ReadFrames(path)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %dx%d, timescale %d\n", path, info.Width, info.Height, info.Timescale)
			fmt.Printf("frames: %d\n", len(frames))
			if len(frames) > 0 {
				first := frames[0]
				last := frames[len(frames)-1]
				fmt.Printf("start: %d..%d ticks (%.2f s)\n",
					first.Start, last.Stop,
					float64(last.Stop-first.Start)/float64(info.Timescale))
			}
			return nil
		},
	}
}
