package hardware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hwmgr-labs/hardware-manager-backend/internal/hardware/domain"
)

type Handler struct{}

// Register attaches the check-in and check-out routes to rg.
func Register(rg gin.IRouter) {
	h := &Handler{}

	rg.GET("/checkin", h.checkIn)
	rg.HEAD("/checkin", h.checkIn)
	rg.GET("/checkout", h.checkOut)
	rg.HEAD("/checkout", h.checkOut)
}

func (h *Handler) checkIn(c *gin.Context) {
	h.respond(c, domain.CheckIn)
}

func (h *Handler) checkOut(c *gin.Context) {
	h.respond(c, domain.CheckOut)
}

func (h *Handler) respond(c *gin.Context, m domain.Movement) {
	projectID := c.Query("projectId")
	qty := c.Query("qty")

	c.JSON(http.StatusOK, domain.NewRequest(m, projectID, qty))
}
