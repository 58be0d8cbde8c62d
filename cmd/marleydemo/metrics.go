package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics mirrors the narrow instrumentation pattern used in the
// kubernetes instrumentation-tools example: a handful of counters
// registered against their own registry, served on /metrics only when
// the operator asks for it with --metrics-addr.
type metrics struct {
	registry     *prometheus.Registry
	tokensFed    prometheus.Counter
	parsesFailed prometheus.Counter
	parsesDone   prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		tokensFed: factory.NewCounter(prometheus.CounterOpts{
			Name: "marley_tokens_fed_total",
			Help: "Number of tokens fed into the parser.",
		}),
		parsesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "marley_parses_failed_total",
			Help: "Number of parses that ended in failure.",
		}),
		parsesDone: factory.NewCounter(prometheus.CounterOpts{
			Name: "marley_parses_finished_total",
			Help: "Number of parses that reached an accepting state.",
		}),
	}
}

func (m *metrics) serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
