package pipeline

import (
	"time"
)

// =============================================================================
// Sample Stage Types
// =============================================================================

// SampleInput contains parameters for frame sampling.
type SampleInput struct {
	VideoPath string
	OutputDir string
	TargetFPS int // Frames to keep per second of video (default: 3)
}

// DefaultSampleInput returns SampleInput with default values.
func DefaultSampleInput() SampleInput {
	return SampleInput{
		OutputDir: "extracted_frames",
		TargetFPS: 3,
	}
}

// SampleResult contains the sampling outcome.
type SampleResult struct {
	Video       VideoInfo
	Interval    int // Source frames between two saved frames
	FramesRead  int
	FramesSaved int
	Paths       []string // Saved files in saved order
}

// VideoInfo describes the source as reported by the decoder.
type VideoInfo struct {
	FrameRate   float64
	TotalFrames int
	Duration    time.Duration
}

// =============================================================================
// Summary Stage Types
// =============================================================================

// SummaryInput contains what the summary stage reports on.
type SummaryInput struct {
	Path    string // Destination of the summary file
	Sample  SampleInput
	Output  OutputOptions
	Result  SampleResult
	Elapsed time.Duration
}

// OutputOptions describes how saved frames were encoded.
type OutputOptions struct {
	Format    string // "jpg" or "png"
	Quality   int    // JPEG quality 1-100
	Width     int    // 0 keeps the source width
	Timestamp bool
}

// SummaryResult contains the written summary.
type SummaryResult struct {
	Path       string
	TotalBytes int64 // Combined size of the saved frames
}
