package chainext

import (
	"context"
	"time"

	"github.com/assetbridge/chainext/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome of a dispatch
type Outcome uint8

const (
	// OutcomeSuccess means the ledger accepted the operation
	OutcomeSuccess Outcome = iota
	// OutcomeRejected means the ledger rejected it and an Err envelope was written
	OutcomeRejected
	// OutcomeAborted means the contract call was aborted
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	default:
		return "aborted"
	}
}

// Event describes one dispatch once it is over
type Event struct {
	FuncID    FuncID
	Operation string
	// Digest is the keccak256 of the raw input
	Digest   common.Hash
	Outcome  Outcome
	Code     *ErrorCode
	Err      error
	Written  int
	Duration time.Duration
}

// RequestDigest hashes a raw request
func RequestDigest(input []byte) common.Hash {
	return common.BytesToHash(keccak256.Hash(input))
}

// EventSink receives dispatch events
type EventSink interface {
	Emit(ctx context.Context, e Event)
}

// NopSink drops every event
type NopSink struct{}

// Emit implements EventSink
func (NopSink) Emit(context.Context, Event) {}

// MultiSink fans events out
type MultiSink []EventSink

// Emit implements EventSink
func (m MultiSink) Emit(ctx context.Context, e Event) {
	for _, s := range m {
		s.Emit(ctx, e)
	}
}

// LogSink writes events as structured log lines
type LogSink struct {
	logger *log.Logger
}

// NewLogSink returns a LogSink writing to logger
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit implements EventSink
func (s *LogSink) Emit(_ context.Context, e Event) {
	kv := []interface{}{
		"func_id", uint32(e.FuncID),
		"operation", e.Operation,
		"digest", e.Digest.Hex(),
		"outcome", e.Outcome.String(),
		"written", e.Written,
		"duration", e.Duration,
	}
	switch e.Outcome {
	case OutcomeSuccess:
		s.logger.Debugw("chain extension call", kv...)
	case OutcomeRejected:
		s.logger.Infow("chain extension call", append(kv, "code", e.Code.String())...)
	default:
		s.logger.Warnw("chain extension call", append(kv, "error", e.Err)...)
	}
}

// MetricSink counts dispatches and records their latency
type MetricSink struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetricSink creates the instruments on meter
func NewMetricSink(meter metric.Meter) (*MetricSink, error) {
	calls, err := meter.Int64Counter("chainext_calls",
		metric.WithDescription("chain extension dispatches by operation and outcome"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("chainext_call_duration",
		metric.WithDescription("chain extension dispatch latency"), metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &MetricSink{calls: calls, duration: duration}, nil
}

// Emit implements EventSink
func (s *MetricSink) Emit(ctx context.Context, e Event) {
	attrs := metric.WithAttributes(
		attribute.String("operation", e.Operation),
		attribute.String("outcome", e.Outcome.String()),
	)
	s.calls.Add(ctx, 1, attrs)
	s.duration.Record(ctx, e.Duration.Seconds(), attrs)
}
