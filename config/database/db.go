package database

import (
	"database/sql"
	"time"

	"tabsync/config"
	"tabsync/pkg/logger"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres pool and verifies it. The fixed startup delay
// gives the database container time to come up when both start together;
// after that a failed connection is fatal. There is no retry loop.
func Connect(cfg config.Config) *sql.DB {
	if cfg.StartupDelay > 0 {
		time.Sleep(cfg.StartupDelay)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Sugar.Fatalf("Failed to open database connection: %v", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := db.Ping(); err != nil {
		logger.Sugar.Fatalf("Failed to connect to Postgres: %v", err)
	}
	logger.Sugar.Info("Successfully connected to the database")
	return db
}
