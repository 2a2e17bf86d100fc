// Package summary implements the run summary stage.
package summary

import (
	"context"
	"fmt"

	"github.com/user/exportframes/pkg/pipeline"
	"github.com/user/exportframes/pkg/ports"
	"github.com/user/exportframes/pkg/summarizer"
)

// Stage measures the saved frames and writes a run summary.
type Stage struct {
	writer *summarizer.Writer
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new summary stage.
func NewStage(writer *summarizer.Writer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		writer: writer,
		fs:     fs,
		logger: logger.WithComponent("summary"),
	}
}

// Execute totals the size of the saved frames and, when input.Path is
// set, writes the summary there.
func (s *Stage) Execute(ctx context.Context, input pipeline.SummaryInput) (pipeline.SummaryResult, error) {
	result := pipeline.SummaryResult{}

	for _, p := range input.Result.Paths {
		size, err := s.fs.Size(p)
		if err != nil {
			s.logger.Warn("Failed to stat %s: %s", p, err.Error())
			continue
		}
		result.TotalBytes += size
	}

	if input.Path == "" {
		return result, nil
	}

	quality := input.Output.Quality
	if input.Output.Format != "jpg" {
		quality = 0
	}

	sum := summarizer.NewBuilder().
		WithSource(summarizer.SourceInfo{
			Path:        input.Sample.VideoPath,
			FrameRate:   input.Result.Video.FrameRate,
			TotalFrames: input.Result.Video.TotalFrames,
			Duration:    input.Result.Video.Duration,
		}).
		WithSettings(summarizer.Settings{
			TargetFPS: input.Sample.TargetFPS,
			Interval:  input.Result.Interval,
			Format:    input.Output.Format,
			Quality:   quality,
			Width:     input.Output.Width,
			Timestamp: input.Output.Timestamp,
		}).
		WithOutput(summarizer.OutputInfo{
			Directory:   input.Sample.OutputDir,
			FramesRead:  input.Result.FramesRead,
			FramesSaved: input.Result.FramesSaved,
			TotalBytes:  result.TotalBytes,
			Elapsed:     input.Elapsed,
		}).
		WithFiles(input.Result.Paths).
		Build()

	if err := s.writer.Write(input.Path, sum); err != nil {
		return result, fmt.Errorf("write summary: %w", err)
	}
	result.Path = input.Path
	s.logger.Debug("Summary written to %s", input.Path)

	return result, nil
}
