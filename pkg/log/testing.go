// Testing utilities: a logger whose output is captured in memory so tests
// can assert on emitted records without touching the process-wide default.

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
)

// NewCaptureLogger returns a debug-level logger writing JSON records into
// the returned buffer.
func NewCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(buf, slog.LevelDebug), buf
}

// Records decodes every JSON record captured in buf.
// Undecodable lines are skipped.
func Records(buf *bytes.Buffer) []map[string]any {
	var records []map[string]any
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}
