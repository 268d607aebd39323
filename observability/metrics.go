package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the metric instruments recorded by the HTTP middleware and
// the login handler. A nil *Metrics is valid and records nothing.
type Metrics struct {
	requestTotal     metric.Int64Counter
	requestDuration  metric.Float64Histogram
	authFailureTotal metric.Int64Counter
	rateLimitedTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter("request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("request.duration",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.duration histogram: %w", err)
	}

	authFailureTotal, err := meter.Int64Counter("auth.failure.total",
		metric.WithDescription("Failed logins and rejected tokens"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.failure.total counter: %w", err)
	}

	rateLimitedTotal, err := meter.Int64Counter("ratelimit.rejected.total",
		metric.WithDescription("Requests rejected by a rate limiter"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ratelimit.rejected.total counter: %w", err)
	}

	return &Metrics{
		requestTotal:     requestTotal,
		requestDuration:  requestDuration,
		authFailureTotal: authFailureTotal,
		rateLimitedTotal: rateLimitedTotal,
	}, nil
}

// RecordRequest records a completed HTTP request.
func (m *Metrics) RecordRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	m.requestTotal.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
	))
}

// RecordAuthFailure records a failed login or a rejected token. The kind is
// coarse ("credentials" or "token") and never identifies an account.
func (m *Metrics) RecordAuthFailure(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.authFailureTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordRateLimited records a request rejected by the named limiter group.
func (m *Metrics) RecordRateLimited(ctx context.Context, group string) {
	if m == nil {
		return
	}
	m.rateLimitedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("group", group)))
}
