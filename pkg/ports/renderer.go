package ports

import (
	"image"
)

// Renderer abstracts image processing operations applied to sampled frames.
type Renderer interface {
	// EncodeImage encodes an image to the specified format.
	// Quality applies to JPEG only (1-100).
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// StampText draws a text label onto a copy of img.
	StampText(img image.Image, text string) image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

// Extension returns the file extension used for the format, without the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	default:
		return "jpg"
	}
}

// ParseImageFormat parses a format name such as "jpg", "jpeg" or "png".
func ParseImageFormat(s string) (ImageFormat, bool) {
	switch s {
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "png":
		return FormatPNG, true
	default:
		return FormatJPEG, false
	}
}
