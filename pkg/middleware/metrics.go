package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/devfolio/pkg/endpoint"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portfolio_requests_total",
		Help: "Requests served, labelled by route and outcome.",
	},
	[]string{"route", "outcome"},
)

// MetricsMiddleware counts every request that passes through the pipeline.
type MetricsMiddleware struct{}

func MakeMetricsMiddleware() MetricsMiddleware {
	return MetricsMiddleware{}
}

func (m MetricsMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		err := next(w, r)

		outcome := "ok"
		if err != nil {
			outcome = "error"
		}

		requestsTotal.WithLabelValues(r.URL.Path, outcome).Inc()

		return err
	}
}
