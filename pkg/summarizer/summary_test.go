package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSource(t *testing.T) {
	summary := NewBuilder().
		WithSource(SourceInfo{Path: "clip.mp4", FrameRate: 30, TotalFrames: 300, Duration: 10 * time.Second}).
		Build()

	if summary.Source.Path != "clip.mp4" {
		t.Errorf("expected path 'clip.mp4', got '%s'", summary.Source.Path)
	}
	if summary.Source.TotalFrames != 300 {
		t.Errorf("expected 300 frames, got %d", summary.Source.TotalFrames)
	}
}

func TestBuilder_WithFiles(t *testing.T) {
	summary := NewBuilder().
		WithOutput(OutputInfo{Directory: "out", FramesSaved: 3}).
		WithFiles([]string{"out/frame_00000.jpg", "out/frame_00001.jpg", "out/frame_00002.jpg"}).
		Build()

	if summary.Output.FirstFile != "out/frame_00000.jpg" {
		t.Errorf("unexpected first file %q", summary.Output.FirstFile)
	}
	if summary.Output.LastFile != "out/frame_00002.jpg" {
		t.Errorf("unexpected last file %q", summary.Output.LastFile)
	}
	if summary.Output.Directory != "out" {
		t.Errorf("WithFiles should keep output fields, got directory %q", summary.Output.Directory)
	}
}

func TestBuilder_WithFiles_Empty(t *testing.T) {
	summary := NewBuilder().WithFiles(nil).Build()

	if summary.Output.FirstFile != "" || summary.Output.LastFile != "" {
		t.Error("expected no files for an empty run")
	}
}

func TestSummary_SamplingRatio(t *testing.T) {
	tests := []struct {
		read, saved int
		want        float64
	}{
		{100, 10, 0.1},
		{0, 0, 0},
		{7, 7, 1},
	}

	for _, tt := range tests {
		s := &Summary{Output: OutputInfo{FramesRead: tt.read, FramesSaved: tt.saved}}
		if got := s.SamplingRatio(); got != tt.want {
			t.Errorf("SamplingRatio(%d/%d) = %v, want %v", tt.saved, tt.read, got, tt.want)
		}
	}
}
