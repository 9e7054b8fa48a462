// Package telemetry provides OpenTelemetry instruments for the status
// lifecycle. Only the otel API is used; provider and exporter lifecycle
// belong to the hosting process, which installs its own MeterProvider
// before calling NewMetrics.
//
//	metrics, err := telemetry.NewMetrics()
//	h := status.New[*Order, OrderStatus](order,
//	    status.WithObserver[*Order, OrderStatus](metrics))
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/andregutierrez/domainkit/status"
)

// Attribute keys for metric labels.
var (
	AttrDomainContext = attribute.Key("domain.context")
	AttrFromStatus    = attribute.Key("status.from")
	AttrToStatus      = attribute.Key("status.to")
	AttrResult        = attribute.Key("result")
)

// Result label values.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Compile-time check that Metrics can observe a history, construction
// included.
var _ status.LifecycleObserver = (*Metrics)(nil)

// Metrics holds pre-registered metric instruments and implements
// status.LifecycleObserver so it can be attached to histories directly.
type Metrics struct {
	TransitionsTotal metric.Int64Counter
	HistoriesTotal   metric.Int64Counter
}

// NewMetrics creates and registers all instruments on the globally
// installed MeterProvider. The meter is scoped to this module's path.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/andregutierrez/domainkit")

	transitions, err := meter.Int64Counter(
		"domainkit.status.transitions",
		metric.WithDescription("Status transitions attempted, by family and result"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	histories, err := meter.Int64Counter(
		"domainkit.status.histories",
		metric.WithDescription("Status histories created, by family"),
		metric.WithUnit("{history}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating histories counter: %w", err)
	}

	return &Metrics{TransitionsTotal: transitions, HistoriesTotal: histories}, nil
}

// HistoryCreated counts a history construction.
func (m *Metrics) HistoryCreated(domainContext string) {
	m.HistoriesTotal.Add(context.Background(), 1, metric.WithAttributes(
		AttrDomainContext.String(domainContext),
	))
}

// TransitionAccepted counts an accepted transition. From is empty for a
// history's first entry.
func (m *Metrics) TransitionAccepted(domainContext, from, to string) {
	m.TransitionsTotal.Add(context.Background(), 1, metric.WithAttributes(
		AttrDomainContext.String(domainContext),
		AttrFromStatus.String(from),
		AttrToStatus.String(to),
		AttrResult.String(ResultAccepted),
	))
}

// TransitionRejected counts a transition the bound validator refused.
func (m *Metrics) TransitionRejected(domainContext, from, to string) {
	m.TransitionsTotal.Add(context.Background(), 1, metric.WithAttributes(
		AttrDomainContext.String(domainContext),
		AttrFromStatus.String(from),
		AttrToStatus.String(to),
		AttrResult.String(ResultRejected),
	))
}
