// Package ports defines the interfaces between the frame sampler and its adapters.
package ports

import "strings"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for decoder and sink internals.
	LevelDebug LogLevel = iota
	// LevelInfo is for run-level messages such as video info and progress.
	LevelInfo
	// LevelWarn is for problems that don't stop the extraction.
	LevelWarn
	// LevelError is for problems that abort the extraction.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel parses a string into a LogLevel.
// Unknown names fall back to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return LevelInfo
}

// Logger abstracts logging operations with multi-language support.
// The msg parameter is a message key that is translated before output;
// args are applied to the translated format.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a new Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}
