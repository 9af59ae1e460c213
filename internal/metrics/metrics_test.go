package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	m := New()
	m.ObserveQuery("A*", OutcomeFound, 3*time.Millisecond, 40)
	m.ObserveQuery("A*", OutcomeFound, time.Millisecond, 10)
	m.ObserveQuery("BFS", OutcomeNoRoute, time.Millisecond, 5)
	m.CountQuery("Greedy", OutcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("A*", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("BFS", OutcomeNoRoute)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("Greedy", OutcomeRejected)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDurationMs))
}

func TestSetGraphAndHandler(t *testing.T) {
	m := New()
	m.SetGraph(1200, 3100)
	assert.Equal(t, 1200.0, testutil.ToFloat64(m.GraphNodes))
	assert.Equal(t, 3100.0, testutil.ToFloat64(m.GraphEdges))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "roadpath_graph_edges 3100")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
