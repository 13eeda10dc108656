// SPDX-License-Identifier: MIT

// Package storage is the persisted key/value store the tools keep their
// durable state in. It mirrors browser local storage: string keys, string
// values, last writer wins.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/thatcatcamp/workbench/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys used by the tools
const (
	KeyTheme          = "appTheme"
	KeyMode           = "appMode"
	KeyPaletteState   = "colorPaletteState"
	KeyCommitMessages = "savedCommitMessages"
)

// Store reads and writes string values by key.
// GetItem reports ok=false when the key is absent.
type Store interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Lister is a Store that can enumerate its keys
type Lister interface {
	Keys() ([]string, error)
}

// KnownKeys are the keys the tools write
var KnownKeys = []string{KeyTheme, KeyMode, KeyPaletteState, KeyCommitMessages}

// ForPlatform returns s when persistence is available on this host,
// and a no-op store otherwise.
func ForPlatform(browser bool, s Store) Store {
	if !browser || s == nil {
		return Disabled{}
	}
	return s
}

// GetJSON decodes the value stored under key into v.
// ok is false when the key is absent; err reports malformed JSON.
func GetJSON(s Store, key string, v any) (bool, error) {
	raw, ok, err := s.GetItem(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key
func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.SetItem(key, string(data))
}

// DBStore keeps items in the storage_items table
type DBStore struct {
	db *gorm.DB
}

// NewDBStore wraps an open, migrated database connection
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) GetItem(key string) (string, bool, error) {
	var item models.StorageItem
	err := s.db.Where("`key` = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return item.Value, true, nil
}

func (s *DBStore) SetItem(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.StorageItem{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DBStore) RemoveItem(key string) error {
	if err := s.db.Where("`key` = ?", key).Delete(&models.StorageItem{}).Error; err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in ascending order
func (s *DBStore) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&models.StorageItem{}).Order("`key`").Pluck("key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}

// MemoryStore is an in-process Store, used in tests and for throwaway sessions
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Keys lists every stored key in ascending order
func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Disabled ignores writes and never has anything stored
type Disabled struct{}

func (Disabled) GetItem(string) (string, bool, error) { return "", false, nil }
func (Disabled) SetItem(string, string) error         { return nil }
func (Disabled) RemoveItem(string) error              { return nil }
