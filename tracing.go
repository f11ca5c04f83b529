package qtx

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (tx *CommittableTransaction) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tx.tracer.Start(ctx, "qtx."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("qtx.tx.xid", tx.xid.String()),
			attribute.Int("qtx.tx.format_id", int(tx.xid.FormatID())),
		),
	)
}

func phaseEvent(span trace.Span, phase string, resources int) {
	span.AddEvent(phase, trace.WithAttributes(attribute.Int("qtx.tx.resources", resources)))
}

func endSpan(span trace.Span, status Status, err error) {
	span.SetAttributes(attribute.String("qtx.tx.status", status.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
