package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// DefaultDatabasePath is used when no DSN is configured.
const DefaultDatabasePath = "directory.db"

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{
		&Page{},
		&Town{},
		&School{},
		&SportsTeam{},
		&FoodTruck{},
	}
}

// Init opens the database described by dsn and runs migrations.
// postgres:// and postgresql:// DSNs use the postgres driver; anything else is
// treated as a sqlite path. An empty dsn falls back to DefaultDatabasePath.
func Init(dsn string) error {
	gdb, err := Open(dsn, logger.Warn)
	if err != nil {
		return err
	}
	DB = gdb
	return nil
}

// Open connects and migrates without touching the package-level DB.
func Open(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(Models()...); err != nil {
		return nil, err
	}
	return gdb, nil
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	path := strings.TrimSpace(dsn)
	if path == "" {
		path = DefaultDatabasePath
	}

	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		return postgres.Open(path), nil
	}

	if !strings.HasPrefix(path, "file:") {
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(path), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
