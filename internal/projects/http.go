package projects

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hwmgr-labs/hardware-manager-backend/internal/projects/domain"
)

type Handler struct{}

func Register(rg gin.IRouter) {
	h := &Handler{}

	rg.GET("/join", h.join)
	rg.HEAD("/join", h.join)
	rg.GET("/leave", h.leave)
	rg.HEAD("/leave", h.leave)
}

func (h *Handler) join(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Joined(c.Query("projectId")))
}

func (h *Handler) leave(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Left(c.Query("projectId")))
}
