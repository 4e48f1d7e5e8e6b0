package postgres

import (
	"context"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/picksheetrepo"
	"fulfillment/internal/adapters/out/postgres/routerepo"

	// lib/pq is the database/sql driver behind gorm; routerepo maps its *pq.Error codes.
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig holds the connection settings of the fulfillment database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Open connects gorm to PostgreSQL through the lib/pq driver.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Models lists every table of the fulfillment store.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&orderrepo.TransitionDTO{},
		&inventoryrepo.ItemDTO{},
		&inventoryrepo.MovementDTO{},
		&picksheetrepo.PickSheetDTO{},
		&picksheetrepo.ItemDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
	}
}

// Migrate creates or updates the schema and the sheet number sequence.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	stmt := fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", picksheetrepo.NumberSequence)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create sequence: %w", err)
	}

	return nil
}
