// Package repo implements the local durable persistence layer. This file
// provides a small aggregate query over the kv_store table, used by the HTTP
// layer for Last-Modified headers and health reporting.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/parkstats-backend/internal/domain"
)

// KVStats returns the number of entries whose key starts with prefix and the
// greatest UpdatedAt among them. An empty prefix covers the whole table. When
// nothing matches, count is 0 and maxUpdatedAt is nil.
func KVStats(ctx context.Context, db *gorm.DB, prefix string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.KVEntry{})
	if prefix != "" {
		q = q.Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
