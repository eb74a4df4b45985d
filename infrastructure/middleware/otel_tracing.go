package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ahrav/go-mcts/internal/domain"
)

// SearchObserver wraps one probe/update cycle in an OpenTelemetry span,
// recording the probe outcome, trace length, and update latency as span
// attributes and events, plus mirroring the same data into metrics.
type SearchObserver struct {
	metrics *SearchMetrics
	search  string
}

// NewSearchObserver constructs an observer for the named search. metrics
// may be nil, in which case only tracing is performed.
func NewSearchObserver(metrics *SearchMetrics, search string) *SearchObserver {
	return &SearchObserver{metrics: metrics, search: search}
}

// ObserveProbe starts a span around a Probe call and returns a function
// that must be called with the resulting status and trace length once
// Probe returns.
func (o *SearchObserver) ObserveProbe(ctx context.Context) (context.Context, func(status domain.ProbeStatus, steps int)) {
	tracer := otel.Tracer("mcts")
	spanCtx, span := tracer.Start(ctx, "Tree.Probe")
	span.SetAttributes(attribute.String("mcts.search", o.search))

	return spanCtx, func(status domain.ProbeStatus, steps int) {
		defer span.End()

		span.SetAttributes(
			attribute.String("mcts.probe_status", status.String()),
			attribute.Int("mcts.trace_steps", steps),
		)

		if status == domain.StatusBusy {
			span.AddEvent("probe.contended")
		}
		span.SetStatus(codes.Ok, "")

		if o.metrics != nil {
			o.metrics.RecordProbe(o.search, status, steps)
		}
	}
}

// ObserveUpdate wraps an Update call, recording its wall-clock latency as
// a span attribute and a metrics histogram observation.
func (o *SearchObserver) ObserveUpdate(ctx context.Context, update func()) {
	tracer := otel.Tracer("mcts")
	_, span := tracer.Start(ctx, "Tree.Update")
	defer span.End()

	span.SetAttributes(attribute.String("mcts.search", o.search))

	start := time.Now()
	update()
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int64("mcts.update_duration_us", elapsed.Microseconds()))
	span.SetStatus(codes.Ok, "")

	if o.metrics != nil {
		o.metrics.RecordUpdate(o.search, elapsed)
	}
}
