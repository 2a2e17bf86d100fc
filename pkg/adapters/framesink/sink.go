// Package framesink writes sampled frames to image files.
package framesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/exportframes/pkg/ports"
	"github.com/user/exportframes/pkg/sampler"
)

// Options configures how frames are written.
type Options struct {
	Format  ports.ImageFormat
	Quality int  // JPEG quality (1-100)
	Width   int  // Resize to this width keeping the aspect ratio (0 = original size)
	Stamp   bool // Draw the frame timestamp in the bottom-left corner
}

// Sink saves frames as frame_NNNNN.<ext> files.
type Sink struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	opts     Options
}

// New creates a new Sink.
func New(fs ports.FileSystem, renderer ports.Renderer, opts Options) *Sink {
	return &Sink{
		fs:       fs,
		renderer: renderer,
		opts:     opts,
	}
}

// FileName returns the file name for the saved-frame index.
// The index is zero-padded to five digits and not range-checked.
func FileName(index int, format ports.ImageFormat) string {
	return fmt.Sprintf("frame_%05d.%s", index, format.Extension())
}

// SaveFrame encodes the frame and writes it into dir.
func (s *Sink) SaveFrame(dir string, index int, frame ports.Frame) (string, error) {
	img := frame.Image

	if s.opts.Width > 0 {
		b := img.Bounds()
		if b.Dx() != s.opts.Width {
			img = s.renderer.ResizeImage(img, s.opts.Width, scaledHeight(b.Dx(), b.Dy(), s.opts.Width))
		}
	}

	if s.opts.Stamp {
		ts := sampler.FormatTimestamp(frame.TimestampMs)
		img = s.renderer.StampText(img, ts)
	}

	data, err := s.renderer.EncodeImage(img, s.opts.Format, s.opts.Quality)
	if err != nil {
		return "", fmt.Errorf("encode frame %d: %w", index, err)
	}

	path := filepath.Join(dir, FileName(index, s.opts.Format))
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func scaledHeight(w, h, width int) int {
	if w == 0 {
		return h
	}
	out := (h*width*2 + w) / (2 * w)
	if out < 1 {
		out = 1
	}
	return out
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
