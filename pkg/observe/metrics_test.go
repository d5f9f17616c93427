package observe

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/passage-dev/passage/pkg/nav"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestMetricsCountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Metrics(WithRegistry(reg))

	m.NavigationStarted("/a")
	m.NavigationFinished("/a", nav.OutcomeOK, 5*time.Millisecond)
	m.NavigationStarted("/b")
	m.NavigationFinished("/b", nav.OutcomeOK, time.Millisecond)
	m.NavigationStarted("/c")
	m.NavigationFinished("/c", nav.OutcomeNotFound, time.Millisecond)

	okCount := counterValue(t, m.navigationsTotal.WithLabelValues(string(nav.OutcomeOK)))
	if okCount != 2 {
		t.Errorf("ok count = %v, want 2", okCount)
	}
	nfCount := counterValue(t, m.navigationsTotal.WithLabelValues(string(nav.OutcomeNotFound)))
	if nfCount != 1 {
		t.Errorf("not_found count = %v, want 1", nfCount)
	}
}

func TestMetricsInFlightGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Metrics(WithRegistry(reg))

	m.NavigationStarted("/a")
	m.NavigationStarted("/b")
	if v := gaugeValue(t, m.inFlight); v != 2 {
		t.Errorf("in flight = %v, want 2", v)
	}

	m.NavigationFinished("/a", nav.OutcomeOK, time.Millisecond)
	if v := gaugeValue(t, m.inFlight); v != 1 {
		t.Errorf("in flight = %v, want 1", v)
	}
}

func TestMetricsCustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Metrics(WithRegistry(reg), WithNamespace("myapp"), WithSubsystem("spa"))

	m.NavigationStarted("/a")
	m.NavigationFinished("/a", nav.OutcomeOK, time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "myapp_spa_navigations_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected myapp_spa_navigations_total metric family")
	}
}

func TestTracingListenerDoesNotPanic(t *testing.T) {
	// No tracer provider configured: the global no-op provider is used.
	l := Tracing(WithTracerName("test"))
	l.NavigationStarted("/a")
	l.NavigationFinished("/a", nav.OutcomeOK, time.Millisecond)
	l.NavigationFinished("/b", nav.OutcomeHandlerError, time.Millisecond)
}

func TestTracingFilter(t *testing.T) {
	skipped := true
	l := Tracing(WithFilter(func(path string) bool {
		skipped = false
		return false
	}))
	l.NavigationFinished("/a", nav.OutcomeOK, time.Millisecond)
	if skipped {
		t.Error("filter was not consulted")
	}
}
