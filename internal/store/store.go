// Package store is the single gateway between the UI layer and the practice
// database. It owns the schema and exposes one method per business operation.
// Every method completes its storage work before returning; nothing is held
// across calls.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// Store wraps the SQLite database holding all practice records.
type Store struct {
	db *gorm.DB
}

// schema is the explicit list of every persisted entity, migrated in
// dependency order.
var schema = []any{
	&models.Client{},
	&models.Product{},
	&models.SalesReceipt{},
	&models.ProductSale{},
	&models.Vendor{},
	&models.PurchaseReceipt{},
	&models.Protocol{},
	&models.Article{},
	&models.FAQ{},
}

// Open opens (creating if absent) the SQLite database at path and ensures
// the schema exists. Safe to call against an already-initialized file.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(path)), &gorm.Config{Logger: gormLogger()})
	if err != nil {
		return nil, &InitializationError{Path: path, Err: err}
	}
	for _, model := range schema {
		if err := db.AutoMigrate(model); err != nil {
			return nil, &InitializationError{Path: path, Err: err}
		}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withForeignKeys appends the driver parameter enabling foreign-key
// enforcement on every connection.
func withForeignKeys(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// gormLogger keeps query logging silent unless DB_DEBUG=1.
func gormLogger() logger.Interface {
	level := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		level = logger.Info
	}
	return logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// exists reports whether a row of model with the given id is present.
func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// requireRow returns a NotFoundError unless a row of model with the given id
// exists. entity names the row in the error.
func requireRow(tx *gorm.DB, model any, entity string, id uint) error {
	ok, err := exists(tx, model, id)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", entity, err)
	}
	if !ok {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

// refCount counts rows of model whose column references id.
func refCount(tx *gorm.DB, model any, column string, id uint) (int64, error) {
	var count int64
	err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error
	return count, err
}

// deleteRow removes one row by id inside tx, translating the outcome into
// the store's taxonomy.
func deleteRow(tx *gorm.DB, model any, entity string, id uint) error {
	res := tx.Delete(model, id)
	if res.Error != nil {
		return writeError(entity, res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

// getRow loads one row by id into dest, translating gorm.ErrRecordNotFound.
func getRow(tx *gorm.DB, dest any, entity string, id uint) error {
	if err := tx.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: entity, ID: id}
		}
		return fmt.Errorf("store: read %s: %w", entity, err)
	}
	return nil
}
