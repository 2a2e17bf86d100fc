package orchestrator_test

import (
	"context"
	"errors"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/exportframes/pkg/adapters/ffmpegsource"
	"github.com/user/exportframes/pkg/adapters/framesink"
	"github.com/user/exportframes/pkg/adapters/imagecodec"
	"github.com/user/exportframes/pkg/adapters/logger"
	"github.com/user/exportframes/pkg/adapters/osfilesystem"
	"github.com/user/exportframes/pkg/mocks"
	"github.com/user/exportframes/pkg/orchestrator"
	"github.com/user/exportframes/pkg/ports"
	"github.com/user/exportframes/pkg/sampler"
	"github.com/user/exportframes/pkg/stages/sample"
	"github.com/user/exportframes/pkg/stages/summary"
	"github.com/user/exportframes/pkg/summarizer"
)

// newPipeline wires the real file system, codec and sink around opener.
func newPipeline(opener ports.VideoOpener, log ports.Logger) *orchestrator.Orchestrator {
	fs := osfilesystem.New()
	sink := framesink.New(fs, imagecodec.New(), framesink.Options{Format: ports.FormatJPEG, Quality: 90})
	s := sampler.New(opener, sink, fs, orchestrator.ProgressLogger(log), log, sampler.Options{})
	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
	return orchestrator.New(sample.NewStage(s), summary.NewStage(writer, fs, log), log)
}

func listFrames(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "frame_*.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

// TestPipeline_WritesDecodableFrames runs the full pipeline on a synthetic source.
func TestPipeline_WritesDecodableFrames(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "nested", "frames")
	summaryPath := filepath.Join(dir, "reports", "summary.md")

	src := mocks.NewVideoSource(30, 95)
	log := mocks.NewLogger()
	orch := newPipeline(mocks.NewVideoOpener("clip.mp4", src), log)

	config := orchestrator.DefaultConfig()
	config.VideoPath = "clip.mp4"
	config.OutputDir = outDir
	config.SummaryPath = summaryPath

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// ceil(95 / 10)
	if result.Sample.FramesSaved != 10 {
		t.Errorf("expected 10 frames saved, got %d", result.Sample.FramesSaved)
	}

	frames := listFrames(t, outDir)
	if len(frames) != 10 {
		t.Fatalf("expected 10 files, got %d", len(frames))
	}
	if filepath.Base(frames[9]) != "frame_00009.jpg" {
		t.Errorf("unexpected last file %s", frames[9])
	}

	f, err := os.Open(frames[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("saved frame is not a valid JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("unexpected frame size %dx%d", b.Dx(), b.Dy())
	}

	if result.TotalBytes <= 0 {
		t.Error("expected total bytes of saved frames")
	}

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("summary not written: %v", err)
	}
	if !strings.Contains(string(data), "| Frames Saved | 10 |") {
		t.Error("summary should report saved frames")
	}

	if !log.Contains("Saved 10 frames...") {
		t.Error("expected progress line")
	}
	if !log.Contains("Extraction complete! Saved 10 frames from 95 total frames.") {
		t.Error("expected completion line")
	}
}

// TestPipeline_RerunOverwrites checks that a second run reuses the same names.
func TestPipeline_RerunOverwrites(t *testing.T) {
	outDir := t.TempDir()

	for i := 0; i < 2; i++ {
		src := mocks.NewVideoSource(25, 50)
		orch := newPipeline(mocks.NewVideoOpener("clip.mp4", src), logger.NewNoop())

		config := orchestrator.DefaultConfig()
		config.VideoPath = "clip.mp4"
		config.OutputDir = outDir
		config.TargetFPS = 5

		if _, err := orch.Run(context.Background(), config); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}

	if n := len(listFrames(t, outDir)); n != 10 {
		t.Errorf("expected 10 files after two runs, got %d", n)
	}
}

// TestPipeline_FFmpeg decodes a real video when the ffmpeg tools are installed.
func TestPipeline_FFmpeg(t *testing.T) {
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not available")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}

	dir := t.TempDir()
	videoPath := filepath.Join(dir, "pattern.mp4")
	gen := exec.Command(ffmpegPath,
		"-v", "error", "-y",
		"-f", "lavfi",
		"-i", "testsrc=duration=2:size=64x48:rate=30",
		"-c:v", "mpeg4",
		"-pix_fmt", "yuv420p",
		videoPath,
	)
	if out, err := gen.CombinedOutput(); err != nil {
		t.Fatalf("failed to generate test video: %v\n%s", err, out)
	}

	log := logger.NewNoop()
	orch := newPipeline(ffmpegsource.New(ffmpegsource.Options{}, log), log)

	config := orchestrator.DefaultConfig()
	config.VideoPath = videoPath
	config.OutputDir = filepath.Join(dir, "frames")

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 60 frames at 30 fps sampled every 10 frames.
	if result.Sample.FramesRead != 60 {
		t.Errorf("expected 60 frames read, got %d", result.Sample.FramesRead)
	}
	if result.Sample.FramesSaved != 6 {
		t.Errorf("expected 6 frames saved, got %d", result.Sample.FramesSaved)
	}
	if n := len(listFrames(t, config.OutputDir)); n != 6 {
		t.Errorf("expected 6 files, got %d", n)
	}
}

// TestPipeline_EmptyFile reports an open error for a zero-length input.
func TestPipeline_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	videoPath := filepath.Join(dir, "empty.mp4")
	if err := os.WriteFile(videoPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	log := logger.NewNoop()
	orch := newPipeline(ffmpegsource.New(ffmpegsource.Options{}, log), log)

	config := orchestrator.DefaultConfig()
	config.VideoPath = videoPath
	config.OutputDir = filepath.Join(dir, "frames")

	_, err := orch.Run(context.Background(), config)
	if !errors.Is(err, sampler.ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	if !errors.Is(err, ffmpegsource.ErrEmptyFile) {
		t.Errorf("expected ErrEmptyFile cause, got %v", err)
	}
}
