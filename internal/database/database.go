package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/config"
)

// New opens the configured database, applies the connection pool settings
// and verifies the connection.
func New(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: NewGormLogger(logger, cfg.DBSlowQueryThreshold),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		logger.Info("Connecting to database",
			zap.String("driver", cfg.DBDriver),
			zap.String("host", cfg.DBHost),
			zap.String("port", cfg.DBPort),
			zap.String("user", cfg.DBUser),
		)
		db, err = openPostgres(cfg.PostgresDSN(), gormCfg)
	case "sqlite":
		logger.Info("Connecting to database",
			zap.String("driver", cfg.DBDriver),
			zap.String("path", cfg.DBPath),
		)
		db, err = gorm.Open(sqlite.Open(SQLiteDSN(cfg.DBPath)), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting connection pool: %w", err)
	}

	// Set connection pool settings
	maxOpen, maxIdle := cfg.DBMaxOpenConns, cfg.DBMaxIdleConns
	if cfg.DBDriver == "sqlite" && isMemoryPath(cfg.DBPath) {
		// every connection to :memory: would see its own empty database
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	logger.Info("Successfully connected to database", zap.String("dialect", db.Dialector.Name()))
	return db, nil
}

func openPostgres(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// SQLiteDSN adds the pragmas the service relies on to a SQLite file path.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_busy_timeout=5000"
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
