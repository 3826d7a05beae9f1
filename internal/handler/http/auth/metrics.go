package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// authRequestsTotal counts signin/signup attempts by action and result.
var authRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Total authentication requests by action and result",
	},
	[]string{"action", "result"},
)

func recordAuth(action, result string) {
	authRequestsTotal.WithLabelValues(action, result).Inc()
}
