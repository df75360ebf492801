package archive

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type archiveRequest struct {
	BranchID string `json:"branch_id" binding:"required"`
}

// --------------------------------------------------
// Admin: export one branch's sale rows as CSV
// --------------------------------------------------
func (h *Handler) ArchiveSales(c *gin.Context) {
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branch_id is required"})
		return
	}

	url, err := h.service.ArchiveSales(c.Request.Context(), req.BranchID)
	if err != nil {
		if errors.Is(err, ErrNoSales) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
