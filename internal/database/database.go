package database

import (
	"fmt"
	"time"

	"github.com/Sojagracesaju/pocketkash/internal/logger"
	"github.com/Sojagracesaju/pocketkash/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is migrated on the SQLite path; Postgres uses SQL migrations.
var allModels = []interface{}{
	&models.Transaction{},
	&models.UserProfile{},
	&models.RoutineExpense{},
}

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager creates a new database manager for the configured driver.
func NewManager(config *Config) (*Manager, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch config.Driver {
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true, // Required for pooled proxies; harmless for direct connections
		}), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, config: config}, nil
}

// Migrate brings the schema up to date. Postgres deployments apply the SQL
// migrations from the migrations/ directory; the SQLite path auto-migrates
// from the model definitions.
func (m *Manager) Migrate() error {
	log := logger.Get()

	if m.config.Driver == DriverPostgres {
		log.Info("Running database migrations...")

		mig, err := migrate.New("file://migrations", m.config.URL())
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
		defer func() {
			srcErr, dbErr := mig.Close()
			if srcErr != nil {
				log.Warnf("migrate source close error: %v", srcErr)
			}
			if dbErr != nil {
				log.Warnf("migrate database close error: %v", dbErr)
			}
		}()

		if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("migration failed: %w", err)
		}

		log.Info("Database migrations completed successfully")
		return nil
	}

	if err := m.db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
