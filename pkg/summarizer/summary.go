// Package summarizer provides summary generation for extraction runs.
package summarizer

import "time"

// Summary contains all data collected during an extraction run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source video as reported by the decoder
	Source SourceInfo

	// Sampling configuration
	Settings Settings

	// Extraction output
	Output OutputInfo
}

// SourceInfo describes the input video.
type SourceInfo struct {
	Path        string
	FrameRate   float64
	TotalFrames int
	Duration    time.Duration
}

// Settings contains the sampling configuration.
type Settings struct {
	TargetFPS int
	Interval  int // Source frames between two saved frames
	Format    string
	Quality   int // JPEG quality, 0 for lossless formats
	Width     int // Output width in pixels, 0 keeps the source size
	Timestamp bool
}

// OutputInfo contains the extraction results.
type OutputInfo struct {
	Directory   string
	FramesRead  int
	FramesSaved int
	TotalBytes  int64
	FirstFile   string
	LastFile    string
	Elapsed     time.Duration
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source video information.
func (b *Builder) WithSource(source SourceInfo) *Builder {
	b.summary.Source = source
	return b
}

// WithSettings sets the sampling configuration.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets extraction results.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithFiles records the first and last saved file.
func (b *Builder) WithFiles(paths []string) *Builder {
	if len(paths) > 0 {
		b.summary.Output.FirstFile = paths[0]
		b.summary.Output.LastFile = paths[len(paths)-1]
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

// SamplingRatio returns the share of read frames that were saved.
func (s *Summary) SamplingRatio() float64 {
	if s.Output.FramesRead == 0 {
		return 0
	}
	return float64(s.Output.FramesSaved) / float64(s.Output.FramesRead)
}
