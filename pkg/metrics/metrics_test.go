package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("schedule-service")

	m.RecordSweepAction("prune_and_backfill", "create", "ok")
	m.RecordSweepAction("prune_and_backfill", "create", "ok")
	m.RecordSweepAction("prune_and_backfill", "delete", "failed")
	m.ObserveBackendCall("list_working_hours", "200", 15*time.Millisecond)
	m.SetWindowEntries("tenant-1", 14)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweepActionsTotal.WithLabelValues("prune_and_backfill", "create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepActionsTotal.WithLabelValues("prune_and_backfill", "delete", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendRequestsTotal.WithLabelValues("list_working_hours", "200")))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.windowEntries.WithLabelValues("tenant-1")))
}

func TestMetrics_NewTwiceDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		New("a")
		New("b")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("schedule-service")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/tenants/{tenantId}/working-hours", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), `service="schedule-service"`)
}
