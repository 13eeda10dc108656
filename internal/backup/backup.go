// Package backup snapshots the persisted tool state to JSON files and
// restores it.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/workbench/internal/storage"
)

// FormatVersion is written into every snapshot
const FormatVersion = "1"

const (
	filePrefix = "backup-"
	fileSuffix = ".json"
	timeLayout = "2006-01-02-150405.000"

	maxSameStamp = 100
)

// Snapshot is the content of one backup file
type Snapshot struct {
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Note      string            `json:"note,omitempty"`
	Items     map[string]string `json:"items"`
}

// BackupManager handles all backup operations
type BackupManager struct {
	BackupPath string // ~/.workbench/backups
	store      storage.Store
	now        func() time.Time
}

// NewBackupManager creates a new backup manager for store
func NewBackupManager(backupPath string, store storage.Store) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		store:      store,
		now:        time.Now,
	}
}

// Snapshot reads every item from the store. Stores that cannot list their
// keys are read through the known tool keys.
func (m *BackupManager) Snapshot(note string) (*Snapshot, error) {
	keys := storage.KnownKeys
	if lister, ok := m.store.(storage.Lister); ok {
		var err error
		if keys, err = lister.Keys(); err != nil {
			return nil, err
		}
	}

	snap := &Snapshot{
		Timestamp: m.now().UTC(),
		Version:   FormatVersion,
		Note:      note,
		Items:     make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		value, ok, err := m.store.GetItem(key)
		if err != nil {
			return nil, err
		}
		if ok {
			snap.Items[key] = value
		}
	}
	return snap, nil
}

// CreateBackup writes a snapshot file and returns its name
func (m *BackupManager) CreateBackup(note string) (string, error) {
	snap, err := m.Snapshot(note)
	if err != nil {
		return "", fmt.Errorf("failed to read store: %w", err)
	}

	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename, f, err := m.createFile(snap.Timestamp)
	if err != nil {
		return "", err
	}
	path := filepath.Join(m.BackupPath, filename)

	if err := Export(f, snap); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return filename, nil
}

// createFile opens a new backup file for ts without touching existing
// ones. Backups taken in the same millisecond get _01, _02, ... which
// still sort after the first.
func (m *BackupManager) createFile(ts time.Time) (string, *os.File, error) {
	stamp := ts.Format(timeLayout)
	for i := 0; i < maxSameStamp; i++ {
		filename := filePrefix + stamp + fileSuffix
		if i > 0 {
			filename = fmt.Sprintf("%s%s_%02d%s", filePrefix, stamp, i, fileSuffix)
		}
		f, err := os.OpenFile(filepath.Join(m.BackupPath, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return filename, f, nil
		}
		if !os.IsExist(err) {
			return "", nil, fmt.Errorf("failed to create backup file: %w", err)
		}
	}
	return "", nil, fmt.Errorf("failed to create backup file: too many backups at %s", stamp)
}

// ListBackups returns backup file names, newest first
func (m *BackupManager) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix) {
			names = append(names, name)
		}
	}
	// timestamps sort lexically
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Restore writes every item of a backup file back into the store.
// Keys not in the backup are left alone.
func (m *BackupManager) Restore(filename string) (*Snapshot, error) {
	f, err := os.Open(filepath.Join(m.BackupPath, filepath.Base(filename)))
	if err != nil {
		return nil, fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()

	snap, err := Import(f)
	if err != nil {
		return nil, err
	}
	if err := Apply(m.store, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Prune deletes all but the newest keep backups and returns how many
// were removed
func (m *BackupManager) Prune(keep int) (int, error) {
	names, err := m.ListBackups()
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	removed := 0
	for i := keep; i < len(names); i++ {
		if err := os.Remove(filepath.Join(m.BackupPath, names[i])); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", names[i], err)
		}
		removed++
	}
	return removed, nil
}

// MarshalIndent is the on-disk encoding of a snapshot
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
