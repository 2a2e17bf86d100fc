package summarizer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/exportframes/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "summary" }), fs)

	path := filepath.Join("reports", "run.md")
	if err := w.Write(path, NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile(path)
	if !ok {
		t.Fatal("summary file not written")
	}
	if string(data) != "summary" {
		t.Errorf("unexpected content %q", data)
	}
	if !fs.HasDir("reports") {
		t.Error("expected parent directory to be created")
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error { return errors.New("disk full") }
	w := NewWriter(NewMarkdownFormatter(), fs)

	if err := w.Write("run.md", NewSummary()); err == nil {
		t.Error("expected write error")
	}
}
