package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/K4ZED/NdangFit/internal/config"
	"github.com/K4ZED/NdangFit/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// dialectMap associe le driver sql.DB au dialecte goose
var dialectMap = map[string]string{
	"pgx":    "postgres",
	"sqlite": "sqlite3",
}

// Connect ouvre la connexion selon cfg.DBDriver ("postgres" ou "sqlite")
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	driver, dsn := DriverDSN(cfg)

	if driver == "sqlite" {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("could not create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Success("Connected to %s database", cfg.DBDriver)
	return db, nil
}

// DriverDSN construit le couple (driver sql, DSN) à partir de la config
func DriverDSN(cfg *config.Config) (string, string) {
	if cfg.DBDriver == "sqlite" {
		// _time_format=sqlite pour que strftime() fonctionne sur les timestamps
		return "sqlite", fmt.Sprintf("file:%s?_time_format=sqlite&_pragma=foreign_keys(1)", cfg.DBPath)
	}
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	return "pgx", dsn
}

// Migrate applique les migrations embarquées du dialecte correspondant
func Migrate(db *sqlx.DB) error {
	driver := db.DriverName()

	dialect, ok := dialectMap[driver]
	if !ok {
		return fmt.Errorf("no migration dialect for driver %q", driver)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	sub := "migrations/sqlite"
	if driver == "pgx" {
		sub = "migrations/postgres"
	}
	dir, err := fs.Sub(migrationsFS, sub)
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}
	goose.SetBaseFS(dir)
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	logger.Success("Migrations up to date")
	return nil
}
