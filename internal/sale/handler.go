package sale

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

type checkoutRequest struct {
	Cart []CartItem `json:"cart" binding:"required"`
}

// --------------------------------------------------
// Checkout: process one cart for the operator's branch
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	branchID := c.GetString("branchID")

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	totals, err := h.service.ProcessSale(c.Request.Context(), branchID, req.Cart)
	if err != nil {
		status, body := classifyError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_price":  totals.TotalPrice,
		"total_profit": totals.TotalProfit,
	})
}

// classifyError maps the sale error taxonomy onto HTTP responses. Validation
// failures are user-facing rejections; a partial commit is an operator-facing
// fault and must not look like a clean rejection.
func classifyError(err error) (int, gin.H) {
	var missing *MissingIngredientError
	if errors.As(err, &missing) {
		return http.StatusUnprocessableEntity, gin.H{
			"error":      err.Error(),
			"ingredient": missing.IngredientID,
		}
	}

	var insufficient *InsufficientStockError
	if errors.As(err, &insufficient) {
		return http.StatusUnprocessableEntity, gin.H{
			"error":      err.Error(),
			"ingredient": insufficient.IngredientName,
			"available":  insufficient.Available,
			"required":   insufficient.Required,
		}
	}

	var partial *PartialCommitError
	if errors.As(err, &partial) {
		return http.StatusInternalServerError, gin.H{
			"error":      "sale partially committed, operator attention required",
			"attempt_id": partial.AttemptID,
		}
	}

	if errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrInvalidQty) ||
		errors.Is(err, ErrUnknownMenuItem) {
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	}

	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}
