package ports

// FrameSink stores sampled frames.
type FrameSink interface {
	// SaveFrame writes frame into dir under the sequential saved index and
	// returns the path it was written to. Existing files are overwritten.
	SaveFrame(dir string, index int, frame Frame) (string, error)
}

// ProgressEvent describes the sampler state after a frame was saved.
type ProgressEvent struct {
	FramesSaved int
	FramesRead  int
	TotalFrames int
	Path        string
}

// ProgressReporter receives periodic progress from the sampler.
type ProgressReporter interface {
	Report(event ProgressEvent)
}

// ProgressFunc is a function adapter for ProgressReporter.
type ProgressFunc func(event ProgressEvent)

// Report implements ProgressReporter.
func (f ProgressFunc) Report(event ProgressEvent) {
	f(event)
}
