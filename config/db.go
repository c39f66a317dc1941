package config

import (
	"fmt"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the store database. DB_DRIVER selects mysql (default) or sqlite.
func NewDB() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		return NewSQLiteDB(GetEnv("SQLITE_PATH", "woocommerce.db"))
	}
	return gorm.Open(mysql.Open(MySQLDSN()), &gorm.Config{
		Logger: gormLogger(),
	})
}

// NewSQLiteDB opens a SQLite database. ":memory:" databases are pinned to a
// single connection, otherwise each pooled connection would see its own
// empty database.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger(),
	})
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func gormLogger() logger.Interface {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	return logger.New(
		gormWriter{},
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      false,
		},
	)
}

// MySQLDSN builds the DSN from MYSQL_DSN or the MYSQL_* parts.
func MySQLDSN() string {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		user := os.Getenv("MYSQL_USER")
		pass := os.Getenv("MYSQL_PASS")
		host := os.Getenv("MYSQL_HOST")
		port := GetEnv("MYSQL_PORT", "3306")
		db := os.Getenv("MYSQL_DB")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local&multiStatements=true", user, pass, host, port, db)
	}
	return dsn
}
