package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMutationCounter(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementUserMutation("Create")
	m.IncrementUserMutation("Create")
	m.IncrementUserMutation("Delete")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UserMutations.WithLabelValues("Create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UserMutations.WithLabelValues("Delete")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementUserMutation("Create")
		m.IncrementAuditLogQueries()
		m.ObserveRequest(http.MethodGet, "/api/users", http.StatusOK, time.Now())
	})
}

func TestHandlerServesRegistry(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())
	m.IncrementAuditLogQueries()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "usermanagement_audit_log_queries_total 1")
}
