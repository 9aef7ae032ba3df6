package log

import (
	"log/slog"
	"testing"

	"churnprep/pkg/errors"
)

func TestNewLoggerSeverityAndMessageKeys(t *testing.T) {
	logger, buf := NewCaptureLogger()

	logger.Info("split complete", TrainRowsKey, 7, ValidationRowsKey, 2, TestRowsKey, 1)

	records := Records(buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec["severity"] != "INFO" {
		t.Errorf("severity = %v, want INFO", rec["severity"])
	}
	if rec["message"] != "split complete" {
		t.Errorf("message = %v, want split complete", rec["message"])
	}
	if rec[TrainRowsKey] != float64(7) {
		t.Errorf("%s = %v, want 7", TrainRowsKey, rec[TrainRowsKey])
	}
}

func TestErrorDetailHandlerAddsStacktrace(t *testing.T) {
	logger, buf := NewCaptureLogger()

	logger.Error("pipeline failed", ErrAttr(errors.New("boom")))

	records := Records(buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if _, ok := records[0][StacktraceAttrKey]; !ok {
		t.Error("expected a stacktrace attribute for a stack-carrying error")
	}
}

func TestErrorDetailHandlerPromotesSchemaError(t *testing.T) {
	logger, buf := NewCaptureLogger()

	err := errors.NewSchemaError("Table.DropColumns", "Phone", []string{"State"})
	logger.Error("clean failed", ErrAttr(err))

	records := Records(buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec[ErrTypeKey] != "SchemaError" {
		t.Errorf("%s = %v, want SchemaError", ErrTypeKey, rec[ErrTypeKey])
	}
	if rec[ErrColumnKey] != "Phone" {
		t.Errorf("%s = %v, want Phone", ErrColumnKey, rec[ErrColumnKey])
	}
	if rec[ErrOpKey] != "Table.DropColumns" {
		t.Errorf("%s = %v, want Table.DropColumns", ErrOpKey, rec[ErrOpKey])
	}
}

func TestErrorDetailHandlerPromotesFormatError(t *testing.T) {
	logger, buf := NewCaptureLogger()

	err := errors.NewFormatError("churn.csv", 42, "wrong number of fields")
	logger.Error("load failed", ErrAttr(err))

	records := Records(buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec[ErrTypeKey] != "FormatError" {
		t.Errorf("%s = %v, want FormatError", ErrTypeKey, rec[ErrTypeKey])
	}
	if rec[ErrSourceKey] != "churn.csv" {
		t.Errorf("%s = %v, want churn.csv", ErrSourceKey, rec[ErrSourceKey])
	}
	if rec[ErrLineKey] != float64(42) {
		t.Errorf("%s = %v, want 42", ErrLineKey, rec[ErrLineKey])
	}
}

func TestErrorDetailHandlerPlainError(t *testing.T) {
	logger, buf := NewCaptureLogger()

	logger.Error("pipeline failed", ErrAttr(errors.New("boom")))

	records := Records(buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	// An error outside the taxonomy carries no promoted type attribute.
	if _, ok := records[0][ErrTypeKey]; ok {
		t.Errorf("unexpected %s attribute for a plain error", ErrTypeKey)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLevelUnknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if err := SetupLogger("verbose"); err == nil {
		t.Error("SetupLogger should reject an unknown level")
	}
}
