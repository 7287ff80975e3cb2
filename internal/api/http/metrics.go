package http

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests per matched route. Requests that fall through to
// the static bundle are counted under "static".
type Metrics struct {
	total  int64
	routes sync.Map // route -> *int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Middleware records the request after the handler chain has run, so
// c.FullPath reflects the matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "static"
		}
		m.record(route)
	}
}

func (m *Metrics) record(route string) {
	atomic.AddInt64(&m.total, 1)

	v, ok := m.routes.Load(route)
	if !ok {
		v, _ = m.routes.LoadOrStore(route, new(int64))
	}
	atomic.AddInt64(v.(*int64), 1)
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Total    int64            `json:"total"`
	Requests map[string]int64 `json:"requests"`
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Total:    atomic.LoadInt64(&m.total),
		Requests: map[string]int64{},
	}
	m.routes.Range(func(k, v any) bool {
		snap.Requests[k.(string)] = atomic.LoadInt64(v.(*int64))
		return true
	})
	return snap
}

func (m *Metrics) Handler(c *gin.Context) {
	snap := m.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"total":    snap.Total,
		"requests": snap.Requests,
	})
}

func (m *Metrics) RegisterRoutes(r gin.IRouter) {
	r.GET("/metrics", m.Handler)
}
