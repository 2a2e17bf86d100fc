// Package orchestrator coordinates the pipeline stages of one extraction run.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/user/exportframes/pkg/pipeline"
	"github.com/user/exportframes/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	VideoPath string

	// Sampling
	OutputDir string
	TargetFPS int

	// Encoding of saved frames, reported in the summary
	Output pipeline.OutputOptions

	// Optional Markdown summary destination
	SummaryPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	in := pipeline.DefaultSampleInput()
	return Config{
		OutputDir: in.OutputDir,
		TargetFPS: in.TargetFPS,
		Output: pipeline.OutputOptions{
			Format:  "jpg",
			Quality: 95,
		},
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	sampleStage  pipeline.Stage[pipeline.SampleInput, pipeline.SampleResult]
	summaryStage pipeline.Stage[pipeline.SummaryInput, pipeline.SummaryResult]
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	sampleStage pipeline.Stage[pipeline.SampleInput, pipeline.SampleResult],
	summaryStage pipeline.Stage[pipeline.SummaryInput, pipeline.SummaryResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		sampleStage:  sampleStage,
		summaryStage: summaryStage,
		logger:       logger,
	}
}

// Run executes the complete pipeline. When sampling fails the result still
// carries the counts reached before the failure.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Debug("Starting pipeline")
	started := time.Now()

	// 1. Sample frames
	sampleInput := pipeline.SampleInput{
		VideoPath: config.VideoPath,
		OutputDir: config.OutputDir,
		TargetFPS: config.TargetFPS,
	}
	sample, err := o.sampleStage.Execute(ctx, sampleInput)
	result := RunResult{
		Sample:  sample,
		Elapsed: time.Since(started),
	}
	if err != nil {
		if sample.FramesSaved > 0 {
			o.logger.Warn("Stopped after saving %d frames", sample.FramesSaved)
		}
		return result, fmt.Errorf("sample stage: %w", err)
	}

	o.logger.Info("Extraction complete! Saved %d frames from %d total frames.", sample.FramesSaved, sample.FramesRead)

	// 2. Summarize
	summary, err := o.summaryStage.Execute(ctx, pipeline.SummaryInput{
		Path:    config.SummaryPath,
		Sample:  sampleInput,
		Output:  config.Output,
		Result:  sample,
		Elapsed: result.Elapsed,
	})
	if err != nil {
		o.logger.Error("Failed to write summary: %s", err.Error())
		return result, fmt.Errorf("summary stage: %w", err)
	}
	result.TotalBytes = summary.TotalBytes
	result.SummaryPath = summary.Path

	if summary.Path != "" {
		o.logger.Info("Summary written to %s", summary.Path)
	}
	o.logger.Debug("Pipeline completed in %s", result.Elapsed.Round(time.Millisecond))

	return result, nil
}

// RunResult contains the results of a pipeline run.
type RunResult struct {
	Sample      pipeline.SampleResult
	TotalBytes  int64  // Combined size of the saved frames
	SummaryPath string // Empty when no summary was requested
	Elapsed     time.Duration
}

// ProgressLogger returns a ProgressReporter that logs the saved frame count.
func ProgressLogger(logger ports.Logger) ports.ProgressReporter {
	return ports.ProgressFunc(func(e ports.ProgressEvent) {
		logger.Info("Saved %d frames...", e.FramesSaved)
		if e.TotalFrames > 0 {
			logger.Debug("Read %d of %d frames", e.FramesRead, e.TotalFrames)
		}
	})
}
