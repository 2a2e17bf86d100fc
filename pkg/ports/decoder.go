package ports

import (
	"context"
	"errors"
	"image"
)

// ErrEndOfStream is returned by VideoSource.ReadNext when no frames remain.
var ErrEndOfStream = errors.New("end of stream")

// VideoSource is an opened, sequentially readable video stream.
type VideoSource interface {
	// FrameRate returns the frame rate reported by the container, in frames per second.
	FrameRate() float64

	// FrameCount returns the total number of frames reported by the container.
	FrameCount() int

	// ReadNext decodes the next frame.
	// It returns ErrEndOfStream once the stream is exhausted.
	ReadNext() (image.Image, error)

	// Release stops decoding and frees the underlying resources.
	// It is safe to call more than once.
	Release() error
}

// VideoOpener opens video files for sequential decoding.
type VideoOpener interface {
	// Open opens the video at path. The context bounds the lifetime of any
	// decoding process started for the source.
	Open(ctx context.Context, path string) (VideoSource, error)
}

// Frame is a decoded frame selected for output.
type Frame struct {
	Image       image.Image
	Index       int // Zero-based read index in the source
	TimestampMs int // Presentation time derived from Index and the source frame rate
}
