package db

import (
	"fmt"

	"github.com/thatcatcamp/workbench/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the store database and migrates it.
// dbPath is a file path for SQLite (":memory:" works) and a DSN for MySQL.
func Open(dbType, dbPath string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "sqlite", "":
		dialector = sqlite.Open(dbPath)
	case "mysql", "mariadb":
		dialector = mysql.Open(dbPath) // dbPath is DSN for MySQL
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// every pooled connection to :memory: would see its own empty database
	if dbPath == ":memory:" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := conn.AutoMigrate(&models.StorageItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return conn, nil
}

// InitDB initializes the shared database connection
func InitDB(dbType, dbPath string) error {
	conn, err := Open(dbType, dbPath)
	if err != nil {
		return err
	}
	DB = conn
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database connection (used for testing)
func SetDB(database *gorm.DB) {
	DB = database
}
