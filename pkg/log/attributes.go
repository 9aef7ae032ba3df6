// Package log defines standard attribute keys for pipeline operations.
//
// Using these keys across every stage keeps run logs filterable: all
// records for one invocation share "run.id", all records for one stage
// share "pipeline.stage".

package log

// Run and stage context.
const (
	// RunIDKey carries the unique identifier of one pipeline invocation.
	RunIDKey = "run.id"

	// StageKey names the pipeline stage emitting the record.
	// Standard values: "load", "clean", "encode", "split", "write".
	StageKey = "pipeline.stage"

	// SourceKey identifies the input location a run is reading.
	SourceKey = "data.source"
)

// Data shape.
const (
	// RowsKey is the number of data rows in the artifact being handled.
	RowsKey = "data.rows"

	// ColumnsKey is the number of columns in the artifact being handled.
	ColumnsKey = "data.columns"

	// TrainRowsKey, ValidationRowsKey and TestRowsKey are the split sizes.
	TrainRowsKey      = "split.train_rows"
	ValidationRowsKey = "split.validation_rows"
	TestRowsKey       = "split.test_rows"

	// SeedKey is the shuffle seed used for the split.
	SeedKey = "split.seed"
)

// Timing.
const (
	// DurationMsKey is elapsed wall-clock time in milliseconds.
	DurationMsKey = "duration_ms"
)

// Error context. These attributes are filled in by ErrorDetailHandler
// from the fields of the pipeline's structured error types.
const (
	// ErrTypeKey names the error kind: FormatError, SchemaError,
	// DataError or NotFittedError.
	ErrTypeKey = "error.type"

	// ErrOpKey is the operation that produced the error.
	ErrOpKey = "error.operation"

	// ErrColumnKey is the column a SchemaError is about.
	ErrColumnKey = "error.column"

	// ErrSourceKey and ErrLineKey locate a FormatError in its input.
	ErrSourceKey = "error.source"
	ErrLineKey   = "error.line"

	// ErrReasonKey is the human-readable failure reason.
	ErrReasonKey = "error.reason"
)
