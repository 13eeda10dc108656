package models

import (
	"time"
)

// StorageItem is one key/value entry in the persisted local store.
// Values are opaque strings; callers decide the encoding (plain or JSON).
type StorageItem struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (StorageItem) TableName() string {
	return "storage_items"
}
