package sampler

import (
	"fmt"
	"math"
	"time"
)

// Plan is the sampling schedule derived from the source metadata and the target rate.
type Plan struct {
	SourceFPS   float64
	TargetFPS   int
	Interval    int // Source frames between two saved frames
	TotalFrames int
	Duration    time.Duration
}

// NewPlan computes the sampling interval as floor(sourceFPS / targetFPS).
func NewPlan(sourceFPS float64, totalFrames, targetFPS int) (Plan, error) {
	if targetFPS <= 0 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrInvalidTargetFPS, targetFPS)
	}
	if sourceFPS == 0 || math.IsNaN(sourceFPS) {
		return Plan{}, ErrZeroFrameRate
	}
	if sourceFPS < 0 || math.IsInf(sourceFPS, 0) {
		return Plan{}, fmt.Errorf("%w: frame rate %v", ErrMetadata, sourceFPS)
	}
	if totalFrames < 0 {
		totalFrames = 0
	}

	interval := int(math.Floor(sourceFPS / float64(targetFPS)))
	if interval == 0 {
		return Plan{}, fmt.Errorf("%w: target %d fps exceeds source %.3f fps", ErrZeroInterval, targetFPS, sourceFPS)
	}

	seconds := float64(totalFrames) / sourceFPS
	return Plan{
		SourceFPS:   sourceFPS,
		TargetFPS:   targetFPS,
		Interval:    interval,
		TotalFrames: totalFrames,
		Duration:    time.Duration(seconds * float64(time.Second)),
	}, nil
}

// ShouldSave reports whether the frame at the zero-based read index is sampled.
func (p Plan) ShouldSave(index int) bool {
	return index%p.Interval == 0
}

// ExpectedSaved returns ceil(TotalFrames / Interval), the number of frames a
// complete run saves when the container frame count is accurate.
func (p Plan) ExpectedSaved() int {
	return (p.TotalFrames + p.Interval - 1) / p.Interval
}

// TimestampMs returns the presentation time of the frame at index.
func (p Plan) TimestampMs(index int) int {
	return int(float64(index) * 1000 / p.SourceFPS)
}

// FormatDuration renders d as H:MM:SS with a six-digit fraction when the
// duration is not a whole number of seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDuration(-d)
	}
	micros := d.Microseconds()
	secs := micros / 1e6
	frac := micros % 1e6

	out := fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	if frac != 0 {
		out += fmt.Sprintf(".%06d", frac)
	}
	return out
}

// FormatTimestamp renders a frame time in milliseconds as H:MM:SS.mmm.
func FormatTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d:%02d.%03d", secs/3600, secs/60%60, secs%60, ms%1000)
}
