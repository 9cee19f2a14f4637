package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesWrittenTotal(t *testing.T) {
	before := testutil.ToFloat64(NotesWrittenTotal.WithLabelValues(OpCreate))
	NotesWrittenTotal.WithLabelValues(OpCreate).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(NotesWrittenTotal.WithLabelValues(OpCreate)))
}

func TestHandlerExposesMetrics(t *testing.T) {
	HTTPRequestsTotal.WithLabelValues("GET", "/cities", "200").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "citynotes_http_requests_total")
}
