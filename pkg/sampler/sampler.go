// Package sampler extracts evenly spaced frames from a video.
//
// A Sampler reads every frame of the source in order and hands every
// Interval-th one to a FrameSink, where Interval is floor(source fps /
// target fps). End of stream is the only normal termination condition.
package sampler

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/exportframes/pkg/ports"
)

// DefaultProgressEvery is the number of saved frames between progress reports.
const DefaultProgressEvery = 10

// Options configures a Sampler.
type Options struct {
	// ProgressEvery is the number of saved frames between progress reports.
	// Zero selects DefaultProgressEvery.
	ProgressEvery int
}

// Result holds the counters of a completed run.
type Result struct {
	Plan        Plan
	FramesRead  int
	FramesSaved int
	Paths       []string
}

// Sampler samples frames from a video source into a frame sink.
type Sampler struct {
	opener        ports.VideoOpener
	sink          ports.FrameSink
	fs            ports.FileSystem
	progress      ports.ProgressReporter
	logger        ports.Logger
	progressEvery int
}

// New creates a Sampler. progress may be nil.
func New(
	opener ports.VideoOpener,
	sink ports.FrameSink,
	fs ports.FileSystem,
	progress ports.ProgressReporter,
	logger ports.Logger,
	opts Options,
) *Sampler {
	every := opts.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}
	if progress == nil {
		progress = ports.ProgressFunc(func(ports.ProgressEvent) {})
	}
	return &Sampler{
		opener:        opener,
		sink:          sink,
		fs:            fs,
		progress:      progress,
		logger:        logger.WithComponent("sampler"),
		progressEvery: every,
	}
}

// Sample writes every Interval-th frame of videoPath into outputDir and
// returns the read and saved counts. Files written before a failure stay
// on disk.
func (s *Sampler) Sample(ctx context.Context, videoPath, outputDir string, targetFPS int) (Result, error) {
	result := Result{}

	// Checked before MkdirAll so an invalid rate leaves the disk untouched.
	// NewPlan repeats the check for callers that build plans directly.
	if targetFPS <= 0 {
		return result, fmt.Errorf("%w: got %d", ErrInvalidTargetFPS, targetFPS)
	}

	if err := s.fs.MkdirAll(outputDir); err != nil {
		return result, fmt.Errorf("%w: create %s: %w", ErrWrite, outputDir, err)
	}

	src, err := s.opener.Open(ctx, videoPath)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrOpen, videoPath, err)
	}
	defer func() {
		if err := src.Release(); err != nil {
			s.logger.Warn("Failed to release video source: %s", err.Error())
		}
	}()

	plan, err := NewPlan(src.FrameRate(), src.FrameCount(), targetFPS)
	if err != nil {
		return result, err
	}
	result.Plan = plan
	s.logger.Info("Video: %s", videoPath)
	s.logger.Info("Duration: %s", FormatDuration(plan.Duration))
	s.logger.Info("Original FPS: %.2f", plan.SourceFPS)
	s.logger.Info("Extracting at %d FPS (every %d frames)", plan.TargetFPS, plan.Interval)
	s.logger.Info("Output directory: %s", outputDir)
	s.logger.Debug("Expecting %d of %d frames", plan.ExpectedSaved(), plan.TotalFrames)

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		img, err := src.ReadNext()
		if errors.Is(err, ports.ErrEndOfStream) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("%w: frame %d: %w", ErrDecode, result.FramesRead, err)
		}

		if plan.ShouldSave(result.FramesRead) {
			frame := ports.Frame{
				Image:       img,
				Index:       result.FramesRead,
				TimestampMs: plan.TimestampMs(result.FramesRead),
			}
			path, err := s.sink.SaveFrame(outputDir, result.FramesSaved, frame)
			if err != nil {
				return result, fmt.Errorf("%w: frame %d: %w", ErrWrite, result.FramesSaved, err)
			}
			result.FramesSaved++
			result.Paths = append(result.Paths, path)

			if result.FramesSaved%s.progressEvery == 0 {
				s.progress.Report(ports.ProgressEvent{
					FramesSaved: result.FramesSaved,
					FramesRead:  result.FramesRead + 1,
					TotalFrames: plan.TotalFrames,
					Path:        path,
				})
			}
		}

		result.FramesRead++
	}

	return result, nil
}
