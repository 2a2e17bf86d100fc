package mocks

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/user/exportframes/pkg/ports"
)

// VideoSource is a synthetic ports.VideoSource producing solid-color frames.
// Frame i is filled with gray level i%256, so tests can tell frames apart.
type VideoSource struct {
	mu sync.Mutex

	Rate   float64
	Count  int // Reported frame count
	Frames int // Frames actually produced before end of stream
	Width  int
	Height int

	// FailAt makes ReadNext return ReadErr when reading that index (-1 disables).
	FailAt  int
	ReadErr error

	ReleaseErr error

	read         int
	ReleaseCalls int
}

// NewVideoSource creates a source reporting and producing frames frames at rate fps.
func NewVideoSource(rate float64, frames int) *VideoSource {
	return &VideoSource{
		Rate:   rate,
		Count:  frames,
		Frames: frames,
		Width:  8,
		Height: 6,
		FailAt: -1,
	}
}

func (m *VideoSource) FrameRate() float64 {
	return m.Rate
}

func (m *VideoSource) FrameCount() int {
	return m.Count
}

func (m *VideoSource) ReadNext() (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.read == m.FailAt {
		return nil, m.ReadErr
	}
	if m.read >= m.Frames {
		return nil, ports.ErrEndOfStream
	}

	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	level := color.Gray{Y: uint8(m.read % 256)}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			img.SetGray(x, y, level)
		}
	}
	m.read++
	return img, nil
}

func (m *VideoSource) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReleaseCalls++
	return m.ReleaseErr
}

// Read returns how many frames were handed out.
func (m *VideoSource) Read() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.read
}

var _ ports.VideoSource = (*VideoSource)(nil)

// VideoOpener is a mock implementation of ports.VideoOpener.
type VideoOpener struct {
	mu sync.Mutex

	// Sources maps paths to the source returned for them.
	Sources map[string]*VideoSource

	OpenFunc func(ctx context.Context, path string) (ports.VideoSource, error)

	OpenCalls []string
}

// NewVideoOpener creates an opener serving a single source at path.
func NewVideoOpener(path string, src *VideoSource) *VideoOpener {
	return &VideoOpener{
		Sources: map[string]*VideoSource{path: src},
	}
}

func (m *VideoOpener) Open(ctx context.Context, path string) (ports.VideoSource, error) {
	m.mu.Lock()
	m.OpenCalls = append(m.OpenCalls, path)
	m.mu.Unlock()

	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}
	src, ok := m.Sources[path]
	if !ok {
		return nil, fmt.Errorf("no such video: %s", path)
	}
	return src, nil
}

var _ ports.VideoOpener = (*VideoOpener)(nil)
