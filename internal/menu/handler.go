package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List available menu for the operator's branch
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	branchID := c.GetString("branchID")

	items, err := h.service.GetAvailableMenu(c.Request.Context(), branchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": items})
}
