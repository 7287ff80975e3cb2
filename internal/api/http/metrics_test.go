package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMetricsRouter(m *Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/join", func(c *gin.Context) { c.Status(http.StatusOK) })
	m.RegisterRoutes(r.Group("/api"))
	r.NoRoute(func(c *gin.Context) { c.String(http.StatusOK, "index") })
	return r
}

func TestMetrics_CountsByRoute(t *testing.T) {
	m := NewMetrics()
	r := setupMetricsRouter(m)

	for _, target := range []string{"/api/join?projectId=a", "/api/join", "/somewhere", "/else"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.Total)
	assert.Equal(t, int64(2), snap.Requests["/api/join"])
	assert.Equal(t, int64(2), snap.Requests["static"])
	assert.Len(t, snap.Requests, 2)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	r := setupMetricsRouter(m)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/join", nil))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		OK       bool             `json:"ok"`
		Total    int64            `json:"total"`
		Requests map[string]int64 `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	// the metrics request itself is recorded after its handler runs
	assert.Equal(t, int64(1), body.Total)
	assert.Equal(t, int64(1), body.Requests["/api/join"])
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				m.record("/api/checkin")
			}
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	assert.Equal(t, int64(1000), snap.Total)
	assert.Equal(t, int64(1000), snap.Requests["/api/checkin"])
}
