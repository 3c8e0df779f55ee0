package database

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thereayou/skillconnect/internal/models"
)

// Database is the credential store: durable keyed storage for users and
// their posts.
type Database struct {
	db *gorm.DB
}

// Connect opens (or creates) the sqlite database at path and creates the
// schema if it is absent. There is no migration mechanism beyond this.
func (d *Database) Connect(path string, debug bool) error {
	dsn := path
	if !strings.Contains(dsn, "?") {
		// Cascade from users to posts relies on sqlite enforcing
		// foreign keys, which is off by default.
		dsn += "?_foreign_keys=on"
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return err
	}

	d.db = db

	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
