package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthAndStatus(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	router := newTestRouter(db)

	mustStatus(t, doRequest(router, http.MethodGet, "/health", nil).Code, http.StatusOK)

	resp := doRequest(router, http.MethodGet, "/api/status", nil)
	mustStatus(t, resp.Code, http.StatusOK)
	if got := resp.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected request id header")
	}
}

func TestMonitorRequiresKey(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	router := newTestRouter(db)

	t.Setenv("MONITORING_API_KEY", "")
	mustStatus(t, doRequest(router, http.MethodGet, "/api/monitor/snapshot", nil).Code, http.StatusServiceUnavailable)

	t.Setenv("MONITORING_API_KEY", "   ")
	mustStatus(t, doRequest(router, http.MethodGet, "/api/monitor/snapshot", nil).Code, http.StatusServiceUnavailable)

	t.Setenv("MONITORING_API_KEY", "k3y")
	mustStatus(t, doRequest(router, http.MethodGet, "/api/monitor/snapshot", nil).Code, http.StatusUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/api/monitor/snapshot", nil)
	req.Header.Set("X-Monitoring-Key", " k3y ")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	mustStatus(t, resp.Code, http.StatusOK)
}
