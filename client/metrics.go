package client

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentRoundTripper wraps next with in-flight, request count and
// latency metrics registered on reg. Pass the result as
// Config.RoundTripper to measure every query the client executes.
func InstrumentRoundTripper(reg prometheus.Registerer, next http.RoundTripper) (http.RoundTripper, error) {
	if next == nil {
		next = http.DefaultTransport
	}

	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "promquery",
		Subsystem: "client",
		Name:      "in_flight_requests",
		Help:      "Number of query requests currently in flight.",
	})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "promquery",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total number of query requests by status code and method.",
	}, []string{"code", "method"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "promquery",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Latency of query requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	for _, c := range []prometheus.Collector{inFlight, requests, latency} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "error registering client metrics")
		}
	}

	return promhttp.InstrumentRoundTripperInFlight(inFlight,
		promhttp.InstrumentRoundTripperCounter(requests,
			promhttp.InstrumentRoundTripperDuration(latency, next))), nil
}
