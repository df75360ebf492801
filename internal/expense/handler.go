package expense

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addExpenseRequest struct {
	ItemName string          `json:"item_name" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
}

// --------------------------------------------------
// Record one expense for the operator's branch
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	branchID := c.GetString("branchID")

	var req addExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name and amount are required"})
		return
	}

	expense, err := h.service.AddExpense(
		c.Request.Context(),
		branchID,
		req.ItemName,
		req.Amount,
		req.Category,
		req.Note,
	)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// --------------------------------------------------
// List expenses, optionally filtered by ?date=YYYY-MM-DD
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	branchID := c.GetString("branchID")
	date := c.Query("date")

	expenses, err := h.service.ListExpenses(c.Request.Context(), branchID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}
