// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/user/exportframes/pkg/adapters/ffmpegsource"
	"github.com/user/exportframes/pkg/adapters/framesink"
	"github.com/user/exportframes/pkg/orchestrator"
	"github.com/user/exportframes/pkg/pipeline"
	"github.com/user/exportframes/pkg/ports"
	"github.com/user/exportframes/pkg/sampler"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config represents the full configuration for exportframes.
type Config struct {
	// Output
	OutputDir string `yaml:"output_dir"`
	Summary   string `yaml:"summary"`

	// Sampling
	FPS           int `yaml:"fps"`
	ProgressEvery int `yaml:"progress_every"`

	// Encoding
	Format    string `yaml:"format"`
	Quality   int    `yaml:"quality"`
	Width     int    `yaml:"width"`
	Timestamp bool   `yaml:"timestamp"`

	// Decoder
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputDir: "extracted_frames",

		FPS:           3,
		ProgressEvery: sampler.DefaultProgressEvery,

		Format:  ports.FormatJPEG.Extension(),
		Quality: 95,

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalid)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be a positive integer, got %d", ErrInvalid, c.FPS)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every must not be negative, got %d", ErrInvalid, c.ProgressEvery)
	}
	if _, ok := ports.ParseImageFormat(c.Format); !ok {
		return fmt.Errorf("%w: unsupported format %q (use jpg or png)", ErrInvalid, c.Format)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", ErrInvalid, c.Quality)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalid, c.Width)
	}
	if ports.ParseLogLevel(c.LogLevel).String() != strings.ToLower(strings.TrimSpace(c.LogLevel)) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// ImageFormat returns the parsed output format, JPEG when unrecognized.
func (c Config) ImageFormat() ports.ImageFormat {
	f, ok := ports.ParseImageFormat(c.Format)
	if !ok {
		return ports.FormatJPEG
	}
	return f
}

// ToSinkOptions converts Config to framesink.Options.
func (c Config) ToSinkOptions() framesink.Options {
	return framesink.Options{
		Format:  c.ImageFormat(),
		Quality: c.Quality,
		Width:   c.Width,
		Stamp:   c.Timestamp,
	}
}

// ToSourceOptions converts Config to ffmpegsource.Options.
func (c Config) ToSourceOptions() ffmpegsource.Options {
	return ffmpegsource.Options{
		FFmpegPath:  c.FFmpegPath,
		FFprobePath: c.FFprobePath,
	}
}

// ToSamplerOptions converts Config to sampler.Options.
func (c Config) ToSamplerOptions() sampler.Options {
	return sampler.Options{
		ProgressEvery: c.ProgressEvery,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(videoPath string) orchestrator.Config {
	return orchestrator.Config{
		VideoPath: videoPath,
		OutputDir: c.OutputDir,
		TargetFPS: c.FPS,
		Output: pipeline.OutputOptions{
			Format:    c.ImageFormat().Extension(),
			Quality:   c.Quality,
			Width:     c.Width,
			Timestamp: c.Timestamp,
		},
		SummaryPath: c.Summary,
	}
}
