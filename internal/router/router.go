package router

import (
	"time"

	"warungpos/internal/archive"
	"warungpos/internal/auth"
	"warungpos/internal/expense"
	"warungpos/internal/history"
	"warungpos/internal/inventory"
	"warungpos/internal/menu"
	"warungpos/internal/middleware"
	"warungpos/internal/sale"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the HTTP surface needs.
type Handlers struct {
	Auth      *auth.Handler
	Menu      *menu.Handler
	Inventory *inventory.Handler
	Sale      *sale.Handler
	Expense   *expense.Handler
	History   *history.Handler
	Archive   *archive.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)

		registerGroup := authGroup.Group("")
		registerGroup.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
		{
			registerGroup.POST("/register", h.Auth.Register)
		}
	}

	// ───────────────────────── POS ─────────────────────────
	pos := r.Group("")
	pos.Use(middleware.AuthMiddleware())
	{
		pos.GET("/menu", h.Menu.List)
		pos.GET("/inventory", h.Inventory.List)
		pos.POST("/inventory/restock", h.Inventory.Restock)
		pos.POST("/sales", h.Sale.Checkout)
		pos.GET("/expenses", h.Expense.List)
		pos.POST("/expenses", h.Expense.Add)
		pos.GET("/history", h.History.List)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
	{
		admin.POST("/sales/archive", h.Archive.ArchiveSales)
	}

	return r
}
