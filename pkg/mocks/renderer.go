package mocks

import (
	"image"

	"github.com/user/exportframes/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc func(img image.Image, width, height int) image.Image
	StampTextFunc   func(img image.Image, text string) image.Image

	ResizeCalls int
	StampCalls  []string
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	m.ResizeCalls++
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) StampText(img image.Image, text string) image.Image {
	m.StampCalls = append(m.StampCalls, text)
	if m.StampTextFunc != nil {
		return m.StampTextFunc(img, text)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)
