package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"tiendaapi/internal/config"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// InitDB initializes the database connection
func InitDB() {
	var err error

	connStr := connectionString()

	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB.SetMaxOpenConns(config.GetIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25))
	DB.SetMaxIdleConns(config.GetIntEnvOrDefault("DB_MAX_IDLE_CONNS", 25))
	DB.SetConnMaxIdleTime(time.Duration(config.GetIntEnvOrDefault("DB_CONN_MAX_IDLE_MINUTES", 5)) * time.Minute)
	DB.SetConnMaxLifetime(time.Duration(config.GetIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute)

	if err = DB.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database successfully")
}

// connectionString prefers DATABASE_URL (hosted Postgres such as Neon hands
// out URLs) and otherwise assembles a key/value DSN from the DB_* variables.
func connectionString() string {
	if url := config.GetEnvOrDefault("DATABASE_URL", ""); url != "" {
		log.Println("Connecting to database using DATABASE_URL")
		return url
	}

	host := config.GetEnvOrDefault("DB_HOST", "localhost")
	port := config.GetEnvOrDefault("DB_PORT", "5432")
	user := config.GetEnvOrDefault("DB_USER", "postgres")
	password := config.GetEnvOrDefault("DB_PASSWORD", "password")
	dbName := config.GetEnvOrDefault("DB_NAME", "tienda")
	sslMode := config.GetEnvOrDefault("DB_SSLMODE", "disable")

	log.Printf("Connecting to database: host=%s port=%s user=%s db=%s sslmode=%s", host, port, user, dbName, sslMode)

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// CloseDB closes the database connection
func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
