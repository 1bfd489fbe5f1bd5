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

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the two label tables if they do not exist.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// PRODUCTS
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// NUTRITIONAL INFO
	// -------------------------------
	nutritionalInfoSQL := `
		CREATE TABLE IF NOT EXISTS nutritional_info (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id),
			serving_label VARCHAR(255) NOT NULL,
			energy_kj DOUBLE PRECISION NOT NULL DEFAULT 0,
			energy_kcal DOUBLE PRECISION NOT NULL DEFAULT 0,
			fat_total DOUBLE PRECISION NOT NULL DEFAULT 0,
			fat_saturates DOUBLE PRECISION NOT NULL DEFAULT 0,
			carbohydrate_total DOUBLE PRECISION NOT NULL DEFAULT 0,
			carbohydrate_sugars DOUBLE PRECISION NOT NULL DEFAULT 0,
			fibre DOUBLE PRECISION NOT NULL DEFAULT 0,
			protein DOUBLE PRECISION NOT NULL DEFAULT 0,
			salt DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, nutritionalInfoSQL); err != nil {
		return err
	}

	log.Println("Schema initialized")
	return nil
}
