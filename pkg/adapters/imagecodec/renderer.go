// Package imagecodec encodes sampled frames and applies the optional resize
// and timestamp overlay.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/exportframes/pkg/ports"
)

// DefaultJPEGQuality matches the quality OpenCV's imwrite uses for JPEG.
const DefaultJPEGQuality = 95

const (
	labelMargin  = 6.0
	labelPadding = 4.0
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// EncodeImage encodes an image to the specified format.
// Quality outside 1-100 selects DefaultJPEGQuality.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// StampText draws text in the bottom-left corner of a copy of img, on a
// translucent dark box so it stays readable on bright frames.
func (r *Renderer) StampText(img image.Image, text string) image.Image {
	dc := gg.NewContextForImage(img)
	w, h := dc.MeasureString(text)

	x := labelMargin
	y := float64(dc.Height()) - labelMargin - h - 2*labelPadding

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(x, y, w+2*labelPadding, h+2*labelPadding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, x+labelPadding, y+labelPadding, 0, 1)
	return dc.Image()
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
