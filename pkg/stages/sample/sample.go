// Package sample implements the frame sampling stage.
package sample

import (
	"context"
	"fmt"

	"github.com/user/exportframes/pkg/pipeline"
	"github.com/user/exportframes/pkg/sampler"
)

// Sampler runs one sampling pass. *sampler.Sampler satisfies it.
type Sampler interface {
	Sample(ctx context.Context, videoPath, outputDir string, targetFPS int) (sampler.Result, error)
}

// Stage extracts frames from a video at a fixed rate.
type Stage struct {
	sampler Sampler
}

// NewStage creates a new sample stage.
func NewStage(s Sampler) *Stage {
	return &Stage{
		sampler: s,
	}
}

// Execute samples input.VideoPath into input.OutputDir. On failure the
// returned result still carries the counts reached so far.
func (s *Stage) Execute(ctx context.Context, input pipeline.SampleInput) (pipeline.SampleResult, error) {
	if input.VideoPath == "" {
		return pipeline.SampleResult{}, fmt.Errorf("video path is required")
	}

	res, err := s.sampler.Sample(ctx, input.VideoPath, input.OutputDir, input.TargetFPS)

	result := pipeline.SampleResult{
		Video: pipeline.VideoInfo{
			FrameRate:   res.Plan.SourceFPS,
			TotalFrames: res.Plan.TotalFrames,
			Duration:    res.Plan.Duration,
		},
		Interval:    res.Plan.Interval,
		FramesRead:  res.FramesRead,
		FramesSaved: res.FramesSaved,
		Paths:       res.Paths,
	}
	return result, err
}
