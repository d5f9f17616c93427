// Package observe provides navigation lifecycle instrumentation.
//
// Both instruments implement nav.Listener and plug into the engine via
// nav.WithListener:
//
//	engine, _ := nav.New(container, surface,
//	    nav.WithListener(observe.Metrics()),
//	    nav.WithListener(observe.Tracing()),
//	)
//
// Metrics records Prometheus counters and histograms of navigation
// outcomes and durations. Tracing emits one OpenTelemetry span per
// completed navigation cycle. The engine itself stays free of either
// dependency.
package observe
