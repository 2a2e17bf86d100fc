package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/exportframes/pkg/ports"
)

// Entry is a message captured by Logger.
type Entry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger records formatted messages instead of printing them.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]Entry
	component string
}

// NewLogger creates a new recording logger.
func NewLogger() *Logger {
	return &Logger{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
	}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.add(ports.LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.add(ports.LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.add(ports.LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.add(ports.LevelError, msg, args) }

// WithComponent returns a logger sharing the same entry buffer.
func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: l.mu, entries: l.entries, component: component}
}

func (l *Logger) add(level ports.LogLevel, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, Entry{
		Level:     level,
		Component: l.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Entries returns a copy of the captured messages.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), *l.entries...)
}

// Contains reports whether any captured message contains substr.
func (l *Logger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
