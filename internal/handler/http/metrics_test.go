package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matchLabels(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matchLabels(m *dto.Metric, labels map[string]string) bool {
	got := map[string]string{}
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range labels {
		if got[k] != v {
			return false
		}
	}
	return true
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	labels := map[string]string{"method": "GET", "path": "/articoli/:id", "status": "404"}
	before := counterValue(t, "http_requests_total", labels)

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articoli/123", nil))

	after := counterValue(t, "http_requests_total", labels)
	if after != before+1 {
		t.Fatalf("http_requests_total=%v, want %v", after, before+1)
	}
}

func TestMetricsHandler_Exposition(t *testing.T) {
	UpdateArticoliTotali(12)
	UpdateArticoliPubblicati(4)

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "articoli_total 12") {
		t.Fatalf("articoli_total gauge missing:\n%s", firstLines(body, 20))
	}
	if !strings.Contains(body, "articoli_pubblicati 4") {
		t.Fatal("articoli_pubblicati gauge missing")
	}
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
