package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("⚠️  WARNING: This will DELETE ALL DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all users")
	fmt.Println("  - Delete all clients and items")
	fmt.Println("  - Delete all invoices, quotations and payments")
	fmt.Println("  - Delete all purchases and expenses")
	fmt.Println("  - Reset company settings and document counters")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "billsoft_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("🔄 Resetting database...")

	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v\n", err)
	}
	defer tx.Rollback(ctx)

	// Child tables first so the truncates never trip a foreign key
	tables := []string{
		"payments",
		"invoice_items",
		"invoices",
		"quotation_items",
		"quotations",
		"purchases",
		"expenses",
		"items",
		"clients",
		"users",
		"settings",
	}

	for _, table := range tables {
		_, err = tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			log.Fatalf("Failed to truncate %s: %v\n", table, err)
		}
		fmt.Printf("  ✓ Cleared %s\n", table)
	}

	sequences := []string{
		"users_id_seq",
		"clients_id_seq",
		"items_id_seq",
		"purchases_id_seq",
		"invoices_id_seq",
		"invoice_items_id_seq",
		"quotations_id_seq",
		"quotation_items_id_seq",
		"payments_id_seq",
		"expenses_id_seq",
	}

	for _, seq := range sequences {
		_, err = tx.Exec(ctx, fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq))
		if err != nil {
			log.Printf("Warning: Failed to reset sequence %s: %v\n", seq, err)
		}
	}
	fmt.Println("  ✓ Reset ID sequences")

	// Re-seed the single settings row; invoice, quotation and expense
	// counters restart at 1.
	_, err = tx.Exec(ctx, "INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING")
	if err != nil {
		log.Fatalf("Failed to seed settings: %v\n", err)
	}
	fmt.Println("  ✓ Re-seeded company settings")

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v\n", err)
	}

	fmt.Println()
	fmt.Println("✅ Database reset complete!")
	fmt.Println("The first account created via signup becomes the admin.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
