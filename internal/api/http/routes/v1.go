package routes

import (
	httpapi "github.com/hwmgr-labs/hardware-manager-backend/internal/api/http"
	"github.com/hwmgr-labs/hardware-manager-backend/internal/hardware"
	"github.com/hwmgr-labs/hardware-manager-backend/internal/projects"

	"github.com/gin-gonic/gin"
)

type APIDeps struct {
	Metrics *httpapi.Metrics
}

// RegisterAPI mounts the echo endpoints under /api.
func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api")

	hardware.Register(api)
	projects.Register(api)

	if dep.Metrics != nil {
		dep.Metrics.RegisterRoutes(api)
	}
}
