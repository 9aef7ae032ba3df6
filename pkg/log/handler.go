package log

import (
	"context"
	"log/slog"

	crdberrors "github.com/cockroachdb/errors"

	"churnprep/pkg/errors"
)

// ErrorDetailHandler decorates log records that carry an "error"
// attribute. For the pipeline's own error types it promotes their
// structured fields (which error kind, which column, which source line)
// into top-level attributes, and for any error built through pkg/errors
// it attaches the captured stack trace. The wrapped handler does the
// actual emitting.
type ErrorDetailHandler struct {
	handler slog.Handler
}

// WrapWithErrorDetail wraps a slog handler with error detail promotion.
func WrapWithErrorDetail(handler slog.Handler) slog.Handler {
	return &ErrorDetailHandler{
		handler: handler,
	}
}

func (eh *ErrorDetailHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrorDetailHandler) Handle(ctx context.Context, r slog.Record) error {
	var extra []slog.Attr
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			extra = errorDetails(err)
			if st := stacktraceOf(err); st != "" {
				extra = append(extra, slog.String(StacktraceAttrKey, st))
			}
		}
		return false
	})
	if len(extra) > 0 {
		r.AddAttrs(extra...)
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrorDetailHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrorDetailHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrorDetailHandler) WithGroup(g string) slog.Handler {
	return &ErrorDetailHandler{handler: eh.handler.WithGroup(g)}
}

// errorDetails maps the pipeline's error taxonomy onto log attributes.
// Errors from outside the taxonomy carry no extra detail.
func errorDetails(err error) []slog.Attr {
	var (
		formatErr    *errors.FormatError
		schemaErr    *errors.SchemaError
		dataErr      *errors.DataError
		notFittedErr *errors.NotFittedError
	)
	switch {
	case errors.As(err, &formatErr):
		return []slog.Attr{
			slog.String(ErrTypeKey, "FormatError"),
			slog.String(ErrSourceKey, formatErr.Source),
			slog.Int(ErrLineKey, formatErr.Line),
			slog.String(ErrReasonKey, formatErr.Reason),
		}
	case errors.As(err, &schemaErr):
		return []slog.Attr{
			slog.String(ErrTypeKey, "SchemaError"),
			slog.String(ErrOpKey, schemaErr.Op),
			slog.String(ErrColumnKey, schemaErr.Column),
		}
	case errors.As(err, &dataErr):
		return []slog.Attr{
			slog.String(ErrTypeKey, "DataError"),
			slog.String(ErrOpKey, dataErr.Op),
			slog.String(ErrReasonKey, dataErr.Reason),
		}
	case errors.As(err, &notFittedErr):
		return []slog.Attr{
			slog.String(ErrTypeKey, "NotFittedError"),
			slog.String(ErrOpKey, notFittedErr.TransformerName+"."+notFittedErr.Method),
		}
	}
	return nil
}

// stacktraceOf pulls the stack trace that pkg/errors constructors record
// into the error's safe details.
func stacktraceOf(err error) string {
	safeDetails := crdberrors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
