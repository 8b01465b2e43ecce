package database

import (
	"database/sql"
	"fmt"
	"log"
)

// CreateTables creates all required tables in the database
func CreateTables() {
	if err := EnsureSchema(DB); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
}

// EnsureSchema creates the products and users tables when missing.
func EnsureSchema(db *sql.DB) error {
	if err := createProductsTable(db); err != nil {
		return err
	}
	return createUsersTable(db)
}

func createProductsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC NOT NULL,
		stock INTEGER NOT NULL,
		upload_date DATE NOT NULL,
		is_new BOOLEAN NOT NULL DEFAULT FALSE,
		photo TEXT NOT NULL,
		discount NUMERIC NOT NULL DEFAULT 0,
		seller TEXT NOT NULL
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS products_price_idx ON products(price)`); err != nil {
		return fmt.Errorf("ensure products price index: %w", err)
	}

	log.Println("Products table ready")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS users_username_idx ON users(username)`); err != nil {
		return fmt.Errorf("ensure users username index: %w", err)
	}

	log.Println("Users table ready")
	return nil
}
