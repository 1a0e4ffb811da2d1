package domain

import "time"

// KVEntry is a single durable string value in the local key-value store.
// Pinned id lists and preferences are stored as JSON under fixed keys.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName implements the GORM tabler interface.
func (KVEntry) TableName() string { return "kv_store" }
