package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveHTTP("get", "/api/v1/challenges/:id", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/challenges/:id", http.StatusOK, 20*time.Millisecond)
	m.RecordDocumentSave("challenge", SaveConflict)
	m.RecordAuthEvent("login", false)
	m.ObserveQuery(time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/challenges/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.documentSaves.WithLabelValues("challenge", SaveConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authEvents.WithLabelValues("login", "false")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.queryDuration))
}

func TestMetrics_InFlight(t *testing.T) {
	m := New()

	done := m.TrackInFlight()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordDocumentSave("festival", SaveOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `lifeos_documents_saves_total{kind="festival",result="ok"} 1`)
}
