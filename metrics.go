package qtx

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/qbixus/qtx-xa"

type txMetrics struct {
	completionDuration  metric.Int64Histogram
	completions         metric.Int64Counter
	heuristics          metric.Int64Counter
	participantFailures metric.Int64Counter
}

func newTxMetrics(mp metric.MeterProvider, logger *zap.Logger) *txMetrics {
	meter := mp.Meter(instrumentationName)
	m := &txMetrics{}
	var err error

	m.completionDuration, err = meter.Int64Histogram(
		"qtx.tx.completion.duration_ms",
		metric.WithDescription("Time spent completing a transaction"),
		metric.WithUnit("ms"),
	)
	logMetricInitError(logger, "qtx.tx.completion.duration_ms", err)

	m.completions, err = meter.Int64Counter(
		"qtx.tx.completions",
		metric.WithDescription("Completed transactions by final status"),
	)
	logMetricInitError(logger, "qtx.tx.completions", err)

	m.heuristics, err = meter.Int64Counter(
		"qtx.tx.heuristics",
		metric.WithDescription("Heuristic transaction outcomes"),
	)
	logMetricInitError(logger, "qtx.tx.heuristics", err)

	m.participantFailures, err = meter.Int64Counter(
		"qtx.tx.participant.failures",
		metric.WithDescription("Participant step failures"),
	)
	logMetricInitError(logger, "qtx.tx.participant.failures", err)

	return m
}

func (m *txMetrics) recordCompletion(ctx context.Context, op string, status Status, duration time.Duration) {
	if m == nil || m.completionDuration == nil || m.completions == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("qtx.tx.operation", op),
		attribute.String("qtx.tx.status", status.String()),
	)
	m.completionDuration.Record(ctx, duration.Milliseconds(), attrs)
	m.completions.Add(ctx, 1, attrs)
}

func (m *txMetrics) recordHeuristic(ctx context.Context, kind outcomeKind) {
	if m == nil || m.heuristics == nil {
		return
	}
	m.heuristics.Add(ctx, 1, metric.WithAttributes(attribute.String("qtx.tx.outcome", kind.String())))
}

func (m *txMetrics) recordParticipantFailure(ctx context.Context, phase string) {
	if m == nil || m.participantFailures == nil {
		return
	}
	m.participantFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("qtx.tx.phase", phase)))
}

func logMetricInitError(logger *zap.Logger, name string, err error) {
	if err == nil || logger == nil {
		return
	}
	logger.Warn("telemetry.metric.init_failed", zap.String("name", name), zap.Error(err))
}
