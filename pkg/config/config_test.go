package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/exportframes/pkg/ports"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exportframes.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.OutputDir != "extracted_frames" {
		t.Errorf("expected output dir extracted_frames, got %q", cfg.OutputDir)
	}
	if cfg.FPS != 3 {
		t.Errorf("expected fps 3, got %d", cfg.FPS)
	}
	if cfg.ProgressEvery != 10 {
		t.Errorf("expected progress every 10, got %d", cfg.ProgressEvery)
	}
	if cfg.Format != "jpg" {
		t.Errorf("expected jpg, got %q", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
output_dir: frames
fps: 1
format: png
width: 640
timestamp: true
ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
log_level: debug
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.OutputDir != "frames" {
		t.Errorf("expected output dir frames, got %q", cfg.OutputDir)
	}
	if cfg.FPS != 1 {
		t.Errorf("expected fps 1, got %d", cfg.FPS)
	}
	if cfg.ImageFormat() != ports.FormatPNG {
		t.Errorf("expected PNG format, got %v", cfg.ImageFormat())
	}
	if cfg.Width != 640 || !cfg.Timestamp {
		t.Errorf("unexpected width/timestamp: %d %v", cfg.Width, cfg.Timestamp)
	}
	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("unexpected ffmpeg path %q", cfg.FFmpegPath)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Quality != 95 {
		t.Errorf("expected default quality 95, got %d", cfg.Quality)
	}
	if cfg.ProgressEvery != 10 {
		t.Errorf("expected default progress every 10, got %d", cfg.ProgressEvery)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := writeConfig(t, "fps: [not, a, number]\n")

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative fps", func(c *Config) { c.FPS = -3 }},
		{"negative progress", func(c *Config) { c.ProgressEvery = -1 }},
		{"unknown format", func(c *Config) { c.Format = "gif" }},
		{"quality too low", func(c *Config) { c.Quality = 0 }},
		{"quality too high", func(c *Config) { c.Quality = 101 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidate_AcceptsVariants(t *testing.T) {
	cfg := Defaults()
	cfg.Format = "jpeg"
	cfg.LogLevel = "WARN"
	cfg.ProgressEvery = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Format = "jpeg"
	cfg.Summary = "summary.md"

	oc := cfg.ToOrchestratorConfig("clip.mp4")

	if oc.VideoPath != "clip.mp4" {
		t.Errorf("unexpected video path %q", oc.VideoPath)
	}
	if oc.TargetFPS != 3 || oc.OutputDir != "extracted_frames" {
		t.Errorf("unexpected sampling settings: %+v", oc)
	}
	if oc.Output.Format != "jpg" {
		t.Errorf("expected normalized format jpg, got %q", oc.Output.Format)
	}
	if oc.SummaryPath != "summary.md" {
		t.Errorf("unexpected summary path %q", oc.SummaryPath)
	}
}

func TestToSinkOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Format = "png"
	cfg.Width = 320
	cfg.Timestamp = true

	opts := cfg.ToSinkOptions()

	if opts.Format != ports.FormatPNG || opts.Width != 320 || !opts.Stamp {
		t.Errorf("unexpected sink options: %+v", opts)
	}
}
