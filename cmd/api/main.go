package main

import (
	"context"
	"log"
	"os"

	"warungpos/internal/archive"
	"warungpos/internal/auth"
	"warungpos/internal/db"
	"warungpos/internal/expense"
	"warungpos/internal/history"
	"warungpos/internal/inventory"
	"warungpos/internal/ledger"
	"warungpos/internal/menu"
	"warungpos/internal/router"
	"warungpos/internal/sale"
	"warungpos/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	store := ledger.NewPostgresStore(pgDB)
	userRepo := auth.NewPostgresUserRepository(pgDB)
	expenseRepo := expense.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	menuService := menu.NewService(store)
	inventoryService := inventory.NewService(store)
	saleService := sale.NewService(store)
	expenseService := expense.NewService(expenseRepo)
	historyService := history.NewService(store, expenseRepo)
	archiveService := archive.NewService(store, r2Client)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:      auth.NewHandler(authService),
		Menu:      menu.NewHandler(menuService),
		Inventory: inventory.NewHandler(inventoryService),
		Sale:      sale.NewHandler(saleService),
		Expense:   expense.NewHandler(expenseService),
		History:   history.NewHandler(historyService),
		Archive:   archive.NewHandler(archiveService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
