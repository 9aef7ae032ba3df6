// Package errors provides the error taxonomy for the dataset preparation
// pipeline. Every failure in the pipeline is one of three fatal kinds:
// FormatError (unparseable input), SchemaError (an expected column is
// missing) or DataError (the data itself cannot produce valid output).
// All constructors attach a stack trace via cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// FormatError indicates that the raw input could not be parsed at all:
// a malformed delimited stream, a ragged row, or a missing header line.
type FormatError struct {
	Source string // input identifier (path or "stream")
	Line   int    // 1-based line number if known, 0 otherwise
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("churnprep: format error in %s at line %d: %s", e.Source, e.Line, e.Reason)
	}
	return fmt.Sprintf("churnprep: format error in %s: %s", e.Source, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *FormatError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("source", e.Source).
		Int("line", e.Line).
		Str("reason", e.Reason).
		Str("type", "FormatError")
}

// NewFormatError creates a FormatError with a stack trace attached.
func NewFormatError(source string, line int, reason string) error {
	err := &FormatError{Source: source, Line: line, Reason: reason}
	return errors.WithStack(err)
}

// SchemaError indicates that a column the schema requires is absent from
// the loaded table, or that a named discard column does not exist.
type SchemaError struct {
	Op      string
	Column  string
	Columns []string // the columns that were actually present
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("churnprep: %s: required column %q not found (have %d columns)", e.Op, e.Column, len(e.Columns))
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Strs("present", e.Columns).
		Str("type", "SchemaError")
}

// NewSchemaError creates a SchemaError with a stack trace attached.
func NewSchemaError(op, column string, present []string) error {
	err := &SchemaError{Op: op, Column: column, Columns: present}
	return errors.WithStack(err)
}

// DataError indicates that the input parsed and matched the schema but its
// contents cannot produce valid output: an empty dataset, a target column
// with more than two values, or too few rows for non-empty splits.
type DataError struct {
	Op     string
	Reason string
	Err    error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("churnprep: %s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("churnprep: %s: %s", e.Op, e.Reason)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "DataError")
}

// NewDataError creates a DataError with a stack trace attached.
func NewDataError(op, reason string) error {
	err := &DataError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// WrapDataError creates a DataError around an underlying cause.
func WrapDataError(op, reason string, cause error) error {
	err := &DataError{Op: op, Reason: reason, Err: cause}
	return errors.WithStack(err)
}

// NotFittedError is returned when Transform is called on an encoder whose
// Fit has not been called yet.
type NotFittedError struct {
	TransformerName string
	Method          string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("churnprep: %s: this transformer is not fitted yet. Call Fit() before using %s()", e.TransformerName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transformer", e.TransformerName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(name, method string) error {
	err := &NotFittedError{TransformerName: name, Method: method}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when the input contains no data rows.
	ErrEmptyData = New("empty data")
)
