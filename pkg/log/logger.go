// Package log provides structured logging for the dataset preparation
// pipeline. It emits JSON records through log/slog and promotes the
// fields of the pipeline's structured errors (including their recorded
// stack traces) into log attributes, so a failed run logs where and on
// what it failed, not just why.
package log

import (
	"io"
	"log/slog"
	"os"

	"churnprep/pkg/errors"
)

// SetupLogger installs the default process-wide logger writing JSON to
// stdout. An unknown level name is an error and leaves the default
// logger untouched.
func SetupLogger(loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	slog.SetDefault(NewLogger(os.Stdout, level))
	return nil
}

// NewLogger builds a JSON logger writing to w at the given level, with
// error detail promotion wired in.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	ops := slog.HandlerOptions{
		Level: level,
		// Replace attributes to the severity/message key convention.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(w, &ops)
	return slog.New(WrapWithErrorDetail(handler))
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Newf("churnprep: invalid log level %q (want debug, info, warn or error)", level)
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
