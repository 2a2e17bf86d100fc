// Package main provides the CLI entry point for exportframes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/exportframes/pkg/adapters/ffmpegsource"
	"github.com/user/exportframes/pkg/adapters/framesink"
	"github.com/user/exportframes/pkg/adapters/imagecodec"
	"github.com/user/exportframes/pkg/adapters/logger"
	"github.com/user/exportframes/pkg/adapters/osfilesystem"
	"github.com/user/exportframes/pkg/config"
	"github.com/user/exportframes/pkg/orchestrator"
	"github.com/user/exportframes/pkg/ports"
	"github.com/user/exportframes/pkg/sampler"
	"github.com/user/exportframes/pkg/stages/sample"
	"github.com/user/exportframes/pkg/stages/summary"
	"github.com/user/exportframes/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract frames from a video at a specified rate."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ExtractCmd defines the extract command, which also runs when no
// subcommand is given.
type ExtractCmd struct {
	// Required arguments
	VideoPath string `arg:"" name:"video_path" help:"Path to the input video file."`

	// Sampling options (override config file)
	OutputDir     *string `name:"output_dir" short:"o" help:"Directory to save extracted frames (default: extracted_frames)."`
	FPS           *int    `name:"fps" help:"Number of frames to extract per second (default: 3)."`
	ProgressEvery *int    `help:"Report progress every N saved frames (default: 10)."`

	// Image options
	Format    *string `short:"f" help:"Image format, jpg or png (default: jpg)."`
	Quality   *int    `short:"q" help:"JPEG quality 1-100 (default: 95)."`
	Width     *int    `short:"W" help:"Resize frames to this width, keeping the aspect ratio."`
	Timestamp bool    `help:"Burn the frame timestamp into each image."`

	// Decoder options
	FFmpegPath  *string `help:"Path to the ffmpeg executable."`
	FFprobePath *string `help:"Path to the ffprobe executable."`

	// Output options
	Config  string  `short:"c" help:"YAML configuration file."`
	Summary *string `short:"s" help:"Write a Markdown run summary to this path."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("exportframes"),
		kong.Description(l10n.T("Extract frames from a video at a specified rate.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the extract command.
func (cmd *ExtractCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := imagecodec.New()
	sink := framesink.New(fs, renderer, cfg.ToSinkOptions())
	opener := ffmpegsource.New(cfg.ToSourceOptions(), log)

	// Create stages
	s := sampler.New(opener, sink, fs, orchestrator.ProgressLogger(log), log, cfg.ToSamplerOptions())
	sampleStage := sample.NewStage(s)

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	summaryStage := summary.NewStage(summarizer.NewWriter(formatter, fs), fs, log)

	// Create orchestrator
	orch := orchestrator.New(sampleStage, summaryStage, log)

	_, err = orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.VideoPath))
	return err
}

// buildConfig layers CLI overrides over the config file over the defaults.
func (cmd *ExtractCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.OutputDir != nil {
		cfg.OutputDir = *cmd.OutputDir
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.ProgressEvery != nil {
		cfg.ProgressEvery = *cmd.ProgressEvery
	}
	if cmd.Format != nil {
		cfg.Format = *cmd.Format
	}
	if cmd.Quality != nil {
		cfg.Quality = *cmd.Quality
	}
	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Timestamp {
		cfg.Timestamp = true
	}
	if cmd.FFmpegPath != nil {
		cfg.FFmpegPath = *cmd.FFmpegPath
	}
	if cmd.FFprobePath != nil {
		cfg.FFprobePath = *cmd.FFprobePath
	}
	if cmd.Summary != nil {
		cfg.Summary = *cmd.Summary
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("exportframes version %s", version))
	return nil
}
