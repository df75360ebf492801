package main

import (
	"context"
	"log"
	"os"

	"warungpos/internal/db"
	"warungpos/internal/ledger"
	"warungpos/internal/reconcile"

	"github.com/joho/godotenv"
)

// Lists every sale attempt that never reached a clean terminal state, with
// the sale rows it recorded, so an operator can repair stock by hand.
func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("❌ Missing env var: DATABASE_URL")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	job := reconcile.NewJob(ledger.NewPostgresStore(pgDB))

	reports, err := job.Run(context.Background())
	if err != nil {
		log.Fatal("Reconcile run failed:", err)
	}

	if len(reports) == 0 {
		log.Println("✅ No unresolved sale attempts")
		return
	}

	log.Printf("⚠️  %d unresolved sale attempts need attention", len(reports))

	for _, report := range reports {
		log.Printf(
			"attempt=%s branch=%s state=%s updated=%s detail=%s",
			report.Attempt.ID,
			report.Attempt.BranchID,
			report.Attempt.State,
			report.Attempt.UpdatedAt.Format("2006-01-02 15:04:05"),
			report.Attempt.Detail,
		)
		for _, sale := range report.Sales {
			log.Printf(
				"  recorded sale: menu=%s qty=%d total=%s profit=%s",
				sale.MenuName, sale.Qty, sale.TotalPrice, sale.Profit,
			)
		}
	}
}
