package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is returned when the video cannot be opened or decoded.
	ErrOpen = errors.New("sampler: cannot open video")

	// ErrMetadata is returned when the source reports unusable metadata.
	ErrMetadata = errors.New("sampler: invalid video metadata")

	// ErrZeroFrameRate is returned when the source reports a zero frame rate.
	ErrZeroFrameRate = fmt.Errorf("%w: frame rate is zero", ErrMetadata)

	// ErrInvalidTargetFPS is returned when the requested rate is not positive.
	ErrInvalidTargetFPS = errors.New("sampler: target fps must be a positive integer")

	// ErrZeroInterval is returned when floor(source fps / target fps) is zero,
	// i.e. the target rate exceeds the source frame rate.
	ErrZeroInterval = errors.New("sampler: sampling interval is zero")

	// ErrWrite is returned when the output directory or a frame file cannot be written.
	ErrWrite = errors.New("sampler: cannot write output")

	// ErrDecode is returned when the decoder fails after the source was opened.
	ErrDecode = errors.New("sampler: decode failed")
)
