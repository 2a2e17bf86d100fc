package ffmpegsource

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/exportframes/pkg/adapters/logger"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSniff_RejectsImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	path := writeTemp(t, "still.mp4", buf.Bytes())

	if err := sniff(path); !errors.Is(err, ErrNotVideo) {
		t.Errorf("expected ErrNotVideo, got %v", err)
	}
}

func TestSniff_RejectsArchive(t *testing.T) {
	zipHeader := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x00, 0x00}
	path := writeTemp(t, "bundle.mp4", zipHeader)

	if err := sniff(path); !errors.Is(err, ErrNotVideo) {
		t.Errorf("expected ErrNotVideo, got %v", err)
	}
}

func TestSniff_AcceptsMP4(t *testing.T) {
	// ftyp box with the isom brand
	header := []byte{
		0x00, 0x00, 0x00, 0x20, 'f', 't', 'y', 'p',
		'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00,
		'i', 's', 'o', 'm', 'i', 's', 'o', '2',
		'a', 'v', 'c', '1', 'm', 'p', '4', '1',
	}
	path := writeTemp(t, "clip.mp4", header)

	if err := sniff(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSniff_AcceptsUnknown(t *testing.T) {
	path := writeTemp(t, "stream.h264", []byte{0x00, 0x00, 0x00, 0x01, 0x67, 0x42})

	if err := sniff(path); err != nil {
		t.Errorf("unknown headers should pass, got %v", err)
	}
}

func TestOpen_RejectsImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	path := writeTemp(t, "still.png", buf.Bytes())

	opener := New(Options{}, logger.NewNoop())

	if _, err := opener.Open(context.Background(), path); !errors.Is(err, ErrNotVideo) {
		t.Errorf("expected ErrNotVideo, got %v", err)
	}
}
