package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// kvEntry is the single-table schema backing SQLiteKV.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"not null;column:value"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteKV is the durable KeyValue backend. Each Set rewrites one row inside
// a transaction, so a value is fully written or not written at all.
type SQLiteKV struct {
	database *gorm.DB
}

func OpenSQLite(dbPath string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv schema: %w", err)
	}

	return &SQLiteKV{database: database}, nil
}

func (kv *SQLiteKV) Get(key string) (string, bool, error) {
	var entry kvEntry
	err := kv.database.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (kv *SQLiteKV) Set(key string, value string) error {
	err := kv.database.Transaction(func(tx *gorm.DB) error {
		var existing kvEntry
		findErr := tx.First(&existing, "key = ?", key).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return tx.Create(&kvEntry{Key: key, Value: value}).Error
		}
		if findErr != nil {
			return findErr
		}
		return tx.Model(&kvEntry{}).Where("key = ?", key).Update("value", value).Error
	})
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}
