package metricsx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/leads/pkg/metricsx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metricsx.Metrics
	m.ObserveLogin("success")
	m.ObserveTokenRejection("Expired")
	m.ObserveSubmission("simulation")
	m.ObservePruned(3)

	h := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestCounters(t *testing.T) {
	m := metricsx.New()

	m.ObserveLogin("success")
	m.ObserveLogin("failure")
	m.ObserveLogin("failure")
	m.ObserveTokenRejection("Expired")
	m.ObserveSubmission("application")
	m.ObservePruned(4)
	m.ObservePruned(0)

	expected := `
# HELP leads_logins_total Login attempts, labeled by result.
# TYPE leads_logins_total counter
leads_logins_total{result="failure"} 2
leads_logins_total{result="success"} 1
# HELP leads_revoked_tokens_pruned_total Expired entries removed from the token denylist.
# TYPE leads_revoked_tokens_pruned_total counter
leads_revoked_tokens_pruned_total 4
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"leads_logins_total", "leads_revoked_tokens_pruned_total"))
}

func TestHTTPMiddlewareUsesPattern(t *testing.T) {
	m := metricsx.New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/simulations/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.HTTPMiddleware(mux)

	for _, id := range []string{"a", "b", "c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/simulations/"+id, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	expected := `
# HELP leads_http_requests_total Total number of HTTP requests, labeled by method, route and code.
# TYPE leads_http_requests_total counter
leads_http_requests_total{code="404",method="GET",route="GET /api/simulations/{id}"} 3
leads_http_requests_total{code="404",method="GET",route="unmatched"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "leads_http_requests_total"))
}

func TestHandlerExposesRuntimeCollectors(t *testing.T) {
	m := metricsx.New()
	srv := httptest.NewServer(m.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "go_goroutines")
}
