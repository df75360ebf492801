package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (branch operators)
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			branch_id VARCHAR(64) NOT NULL,
			branch_name VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CASHIER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// INVENTORY
	// row id doubles as the opaque row reference handed to UpdateStock
	// -------------------------------
	inventoryTableSQL := `
		CREATE TABLE IF NOT EXISTS inventory (
			id SERIAL PRIMARY KEY,
			branch_id VARCHAR(64) NOT NULL,
			ingredient_id VARCHAR(64) NOT NULL,
			name VARCHAR(255) NOT NULL,
			unit VARCHAR(32) NOT NULL,
			cost_per_unit NUMERIC(14,4) NOT NULL DEFAULT 0,
			stock DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (stock >= 0),
			UNIQUE (branch_id, ingredient_id)
		)
	`
	if _, err := db.Exec(ctx, inventoryTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES (global, branch-independent)
	// -------------------------------
	recipeTableSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id SERIAL PRIMARY KEY,
			menu_name VARCHAR(255) UNIQUE NOT NULL,
			sell_price NUMERIC(14,2) NOT NULL DEFAULT 0,
			ingredients TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, recipeTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SALES (append-only)
	// -------------------------------
	saleTableSQL := `
		CREATE TABLE IF NOT EXISTS sales (
			id SERIAL PRIMARY KEY,
			attempt_id UUID NOT NULL,
			branch_id VARCHAR(64) NOT NULL,
			sold_at TIMESTAMPTZ NOT NULL,
			menu_name VARCHAR(255) NOT NULL,
			qty INT NOT NULL,
			total_price NUMERIC(14,2) NOT NULL,
			total_cogs NUMERIC(14,2) NOT NULL,
			profit NUMERIC(14,2) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, saleTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SALE ATTEMPTS (one row per checkout call, drives reconciliation)
	// -------------------------------
	attemptTableSQL := `
		CREATE TABLE IF NOT EXISTS sale_attempts (
			id UUID PRIMARY KEY,
			branch_id VARCHAR(64) NOT NULL,
			state VARCHAR(32) NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, attemptTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// EXPENSES
	// -------------------------------
	expenseTableSQL := `
		CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			branch_id VARCHAR(64) NOT NULL,
			spent_on DATE NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			category VARCHAR(64) NOT NULL DEFAULT '',
			note TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, expenseTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
