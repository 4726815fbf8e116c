package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Models lists every table the catalog owns, in creation order.
var Models = []any{
	&entities.User{},
	&entities.Book{},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the store at dbPath. The file is created by SQLite if it
// does not exist; callers that need the bootstrap semantics use EnsureStore first.
func NewDatabase(dbPath string, log *logrus.Logger) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// single local user, one connection at a time
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HasSchema reports whether both catalog tables exist. A store left behind by
// an interrupted bootstrap from an older build can lack them.
func (d *Database) HasSchema() bool {
	migrator := d.DB.Migrator()
	for _, model := range Models {
		if !migrator.HasTable(model) {
			return false
		}
	}
	return true
}

func gormLogger(log *logrus.Logger) logger.Interface {
	if log != nil && log.IsLevelEnabled(logrus.DebugLevel) {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Silent)
}
