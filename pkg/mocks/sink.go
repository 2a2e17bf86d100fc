package mocks

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/user/exportframes/pkg/ports"
)

// FrameSink is a mock implementation of ports.FrameSink that keeps frames in memory.
type FrameSink struct {
	mu sync.RWMutex

	Frames map[string]ports.Frame

	SaveFrameFunc func(dir string, index int, frame ports.Frame) (string, error)
}

// NewFrameSink creates a new mock FrameSink.
func NewFrameSink() *FrameSink {
	return &FrameSink{
		Frames: make(map[string]ports.Frame),
	}
}

func (m *FrameSink) SaveFrame(dir string, index int, frame ports.Frame) (string, error) {
	if m.SaveFrameFunc != nil {
		return m.SaveFrameFunc(dir, index, frame)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame_%05d.jpg", index))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[path] = frame
	return path, nil
}

// Len returns the number of distinct paths written.
func (m *FrameSink) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Frames)
}

// Get returns the frame stored at path.
func (m *FrameSink) Get(path string) (ports.Frame, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.Frames[path]
	return f, ok
}

var _ ports.FrameSink = (*FrameSink)(nil)
