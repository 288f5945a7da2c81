// Package telemetry is the error sink for background jobs: captured
// exceptions go to the structured log and onto the active trace span.
package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Reporter captures exceptions without interrupting the caller.
type Reporter struct {
	log *slog.Logger
}

// NewReporter creates a Reporter.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{log: logger.With("adapter", "telemetry")}
}

// CaptureException logs err at error level and records it as an exception
// event on the span carried by ctx. A nil error is ignored. The span status
// is left untouched: a captured exception is not a failed operation.
func (r *Reporter) CaptureException(ctx context.Context, err error, attrs ...slog.Attr) {
	if err == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(toAttributes(attrs)...))

	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("error", err.Error()))
	for _, a := range attrs {
		args = append(args, a)
	}
	r.log.ErrorContext(ctx, "exception captured", args...)
}

func toAttributes(attrs []slog.Attr) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		v := a.Value.Resolve()
		switch v.Kind() {
		case slog.KindString:
			out = append(out, attribute.String(a.Key, v.String()))
		case slog.KindInt64:
			out = append(out, attribute.Int64(a.Key, v.Int64()))
		case slog.KindUint64:
			out = append(out, attribute.Int64(a.Key, int64(v.Uint64())))
		case slog.KindFloat64:
			out = append(out, attribute.Float64(a.Key, v.Float64()))
		case slog.KindBool:
			out = append(out, attribute.Bool(a.Key, v.Bool()))
		default:
			out = append(out, attribute.String(a.Key, v.String()))
		}
	}
	return out
}
