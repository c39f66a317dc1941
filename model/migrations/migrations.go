// Package migrations creates the store schema. MySQL runs the versioned SQL
// files through golang-migrate; SQLite (dev and tests) uses gorm AutoMigrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"woocommerce.GO/model/entity"
	"woocommerce.GO/model/entity/coupon"
	"woocommerce.GO/model/entity/customer"
	"woocommerce.GO/model/entity/media"
	"woocommerce.GO/model/entity/order"
	"woocommerce.GO/model/entity/product"
)

//go:embed mysql/*.sql
var mysqlFiles embed.FS

// Models lists every entity, in creation order.
func Models() []interface{} {
	return []interface{}{
		&product.Product{},
		&media.MediaItem{},
		&coupon.Coupon{},
		&customer.Customer{},
		&entity.APIToken{},
		&order.Order{},
		&order.Item{},
	}
}

// Up brings the schema to the latest version.
func Up(db *gorm.DB) error {
	if db.Dialector.Name() != "mysql" {
		log.Info().Str("dialect", db.Dialector.Name()).Msg("auto-migrating schema")
		return db.AutoMigrate(Models()...)
	}
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	v, dirty, _ := m.Version()
	log.Info().Uint("version", v).Bool("dirty", dirty).Msg("schema migrated")
	return nil
}

// Down rolls back steps migrations. MySQL only.
func Down(db *gorm.DB, steps int) error {
	if db.Dialector.Name() != "mysql" {
		return errors.New("down migrations need mysql")
	}
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func newMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(mysqlFiles, "mysql")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "mysql", driver)
}
