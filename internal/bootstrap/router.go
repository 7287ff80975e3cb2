package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hwmgr-labs/hardware-manager-backend/config"
	httpapi "github.com/hwmgr-labs/hardware-manager-backend/internal/api/http"
	"github.com/hwmgr-labs/hardware-manager-backend/internal/api/http/middleware"
	"github.com/hwmgr-labs/hardware-manager-backend/internal/api/http/routes"
	"github.com/hwmgr-labs/hardware-manager-backend/internal/spa"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Static      config.StaticConfig
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Metrics     *httpapi.Metrics
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	// "/api/checkin/" is not a route; it belongs to the bundle fallback
	r.RedirectTrailingSlash = false

	r.Use(middleware.RequestID())
	// before CORS and the limiter so preflights and 429s are counted
	if dep.Metrics != nil {
		r.Use(dep.Metrics.Middleware())
	}
	r.Use(cors.New(corsConfig(dep.CORS)))
	r.Use(middleware.RateLimit(dep.RateLimit.RPS, dep.RateLimit.Burst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	routes.RegisterAPI(r, routes.APIDeps{Metrics: dep.Metrics})

	// last: owns "/" and every unmatched path
	spa.NewHandler(dep.Static.Dir, dep.Static.Index).Register(r)

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if c.AllowAll() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowedOrigins
	}
	return cfg
}
