// Package repo implements the local durable persistence layer. This file
// provides the string key → string value primitives that the pin and
// preference stores are built on.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/parkstats-backend/internal/domain"
)

// GetValue returns the value stored under key. ok is false when the key is
// absent; err is set only for storage failures.
func GetValue(ctx context.Context, db *gorm.DB, key string) (value string, ok bool, err error) {
	var e domain.KVEntry
	err = db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

// SetValue inserts or replaces the value under key.
func SetValue(ctx context.Context, db *gorm.DB, key, value string) error {
	e := domain.KVEntry{Key: key, Value: value}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

// DeleteValue removes key. Deleting an absent key is not an error.
func DeleteValue(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Where("key = ?", key).Delete(&domain.KVEntry{}).Error
}
