package qtx

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultFormatID - формат идентификаторов, создаваемых для транзакций без явного XID.
const DefaultFormatID int32 = 0x51545831

// TxOption настраивает [CommittableTransaction], см. [NewCommittableTransaction].
type TxOption func(*txOptions)

type txOptions struct {
	xid            XID
	formatID       int32
	formatIDSet    bool
	logger         *zap.Logger
	converter      ResourceConverter
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithXID задает идентификатор транзакции вместо сгенерированного.
func WithXID(xid XID) TxOption {
	return func(o *txOptions) { o.xid = xid }
}

// WithFormatID задает формат генерируемого идентификатора.
func WithFormatID(formatID int32) TxOption {
	return func(o *txOptions) { o.formatID, o.formatIDSet = formatID, true }
}

func WithLogger(logger *zap.Logger) TxOption {
	return func(o *txOptions) { o.logger = logger }
}

// WithConverter задает адаптер блокирующих участников. По умолчанию [GoroutineConverter].
func WithConverter(conv ResourceConverter) TxOption {
	return func(o *txOptions) { o.converter = conv }
}

func WithMeterProvider(mp metric.MeterProvider) TxOption {
	return func(o *txOptions) { o.meterProvider = mp }
}

func WithTracerProvider(tp trace.TracerProvider) TxOption {
	return func(o *txOptions) { o.tracerProvider = tp }
}

func (o *txOptions) applyDefaults() {
	if o.xid.IsZero() {
		formatID := DefaultFormatID
		if o.formatIDSet {
			formatID = o.formatID
		}
		o.xid = GenerateXID(formatID)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.converter == nil {
		o.converter = GoroutineConverter
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
}
