package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/exportframes/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden %d", 1)
	log.Info("processed %d items", 10)
	log.Warn("careful")
	log.Error("broken")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out.String(), "processed 10 items") {
		t.Errorf("expected info message on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "careful") || !strings.Contains(errOut.String(), "broken") {
		t.Errorf("expected warn and error on stderr, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "careful") {
		t.Error("warnings should not go to stdout")
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &errOut)

	log.Error("broken")
	log.Info("info")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q / %q", out.String(), errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &errOut).WithComponent("ffmpeg")

	log.Debug("starting decoder")
	log.Info("plain")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "[ffmpeg] starting decoder" {
		t.Errorf("unexpected debug line %q", lines[0])
	}
	if lines[1] != "plain" {
		t.Errorf("unexpected info line %q", lines[1])
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	if log.WithComponent("x") != ports.Logger(log) {
		t.Error("expected WithComponent to return the same logger")
	}
}
