package inventory

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

// --------------------------------------------------
// Branch inventory snapshot
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	branchID := c.GetString("branchID")

	items, err := h.service.List(c.Request.Context(), branchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventory": items})
}

type restockRequest struct {
	RowID    int64   `json:"row_id" binding:"required"`
	AddStock float64 `json:"add_stock" binding:"required"`
}

// --------------------------------------------------
// Add delivered stock to one row
// --------------------------------------------------
func (h *Handler) Restock(c *gin.Context) {
	branchID := c.GetString("branchID")

	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row_id and add_stock are required"})
		return
	}

	newStock, err := h.service.Restock(
		c.Request.Context(),
		branchID,
		req.RowID,
		req.AddStock,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNegativeStock):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"new_stock": newStock})
}
