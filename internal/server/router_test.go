package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/data"
	"github.com/somshrestha/inflo-tech-test/internal/health"
	"github.com/somshrestha/inflo-tech-test/internal/metrics"
	"github.com/somshrestha/inflo-tech-test/internal/users"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

func newTestDependencies(t *testing.T, db health.Pinger) Dependencies {
	t.Helper()
	logger := zap.NewNop()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	store := data.NewSeededMemoryStore()
	dc := data.NewDataContext(store, logger, data.NewAuditInterceptor())

	manager := health.NewManager(logger)
	if db == nil {
		db = store
	}
	manager.AddChecker(health.NewDatabaseChecker(db))

	return Dependencies{
		Logger:      logger,
		Users:       users.NewUserService(dc, logger, m),
		AuditLogs:   auditlogs.NewService(dc, auditlogs.PageOptions{}, logger, m),
		Validator:   validation.New(),
		Mapper:      viewmodels.NewMapper(),
		Health:      manager,
		Metrics:     m,
		CorsOrigins: []string{"https://localhost:7063"},
	}
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(newTestDependencies(t, nil))

	w := serve(router, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Services["database"])
}

func TestHealthEndpointUnhealthy(t *testing.T) {
	router := NewRouter(newTestDependencies(t, failingPinger{}))

	w := serve(router, http.MethodGet, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestRoutesAreMounted(t *testing.T) {
	router := NewRouter(newTestDependencies(t, nil))

	tests := []struct {
		path string
		code int
	}{
		{path: "/api/users", code: http.StatusOK},
		{path: "/api/auditlogs", code: http.StatusOK},
		{path: "/users", code: http.StatusOK},
		{path: "/auditlogs", code: http.StatusOK},
		{path: "/metrics", code: http.StatusOK},
		{path: "/nowhere", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.code, serve(router, http.MethodGet, tt.path).Code)
		})
	}
}

func TestMetricsRecordRequests(t *testing.T) {
	router := NewRouter(newTestDependencies(t, nil))

	serve(router, http.MethodGet, "/api/users/1")
	w := serve(router, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/users/:id"`)
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := NewRouter(newTestDependencies(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	generated := serve(router, http.MethodGet, "/api/users")
	assert.Len(t, generated.Header().Get(RequestIDHeader), 36)
}

func TestCorsPreflight(t *testing.T) {
	router := NewRouter(newTestDependencies(t, nil))

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "https://localhost:7063")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://localhost:7063", w.Header().Get("Access-Control-Allow-Origin"))
}
