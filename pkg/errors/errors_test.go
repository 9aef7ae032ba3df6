package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewFormatError(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		line    int
		reason  string
		wantMsg string
	}{
		{
			name:    "with line number",
			source:  "churn.csv",
			line:    42,
			reason:  "wrong number of fields",
			wantMsg: `churnprep: format error in churn.csv at line 42: wrong number of fields`,
		},
		{
			name:    "without line number",
			source:  "stream",
			line:    0,
			reason:  "missing header",
			wantMsg: `churnprep: format error in stream: missing header`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFormatError(tt.source, tt.line, tt.reason)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var fmtErr *FormatError
			if !As(err, &fmtErr) {
				t.Error("Error should be castable to *FormatError")
			}
		})
	}
}

func TestNewSchemaError(t *testing.T) {
	err := NewSchemaError("Table.DropColumns", "Phone", []string{"State", "Area Code"})

	want := `churnprep: Table.DropColumns: required column "Phone" not found (have 2 columns)`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var schemaErr *SchemaError
	if !As(err, &schemaErr) {
		t.Fatal("Error should be castable to *SchemaError")
	}
	if schemaErr.Column != "Phone" {
		t.Errorf("Column = %v, want Phone", schemaErr.Column)
	}
}

func TestNewDataError(t *testing.T) {
	err := NewDataError("TrainValidTestSplit", "row count 1 too small to produce non-empty splits")

	want := "churnprep: TrainValidTestSplit: row count 1 too small to produce non-empty splits"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dataErr *DataError
	if !As(err, &dataErr) {
		t.Error("Error should be castable to *DataError")
	}
}

func TestWrapDataError(t *testing.T) {
	err := WrapDataError("Load", "input churn.csv is empty", ErrEmptyData)

	want := "churnprep: Load: input churn.csv is empty: empty data"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
	if !Is(err, ErrEmptyData) {
		t.Error("Is() should match the wrapped sentinel")
	}
	var dataErr *DataError
	if !As(err, &dataErr) {
		t.Error("Error should be castable to *DataError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("OneHotEncoder", "Transform")

	want := "churnprep: OneHotEncoder: this transformer is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewDataError("Load", "empty data")
	wrapped := Wrap(base, "prepare pipeline failed")

	var dataErr *DataError
	if !As(wrapped, &dataErr) {
		t.Error("Wrapped error should still be castable to *DataError")
	}
	if !strings.Contains(wrapped.Error(), "prepare pipeline failed") {
		t.Errorf("Wrapped message missing context: %v", wrapped.Error())
	}
}

func TestErrEmptyData(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "Load")
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Is() should match ErrEmptyData through wrapping")
	}
}
