package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/thatcatcamp/workbench/internal/storage"
)

func newTestManager(t *testing.T, store storage.Store) *BackupManager {
	t.Helper()
	manager := NewBackupManager(t.TempDir(), store)
	clock := time.Date(2025, 12, 25, 14, 30, 22, 0, time.UTC)
	manager.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return manager
}

func TestNewBackupManager(t *testing.T) {
	manager := NewBackupManager("/tmp/backups", storage.NewMemoryStore())
	if manager == nil {
		t.Fatal("NewBackupManager returned nil")
	}
	if manager.BackupPath != "/tmp/backups" {
		t.Errorf("expected /tmp/backups, got %s", manager.BackupPath)
	}
}

func TestCreateBackup(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SetItem(storage.KeyTheme, "forestGreen")
	store.SetItem(storage.KeyPaletteState, `{"baseColorHex":"#10B981","saturation":70,"lightness":40}`)

	manager := newTestManager(t, store)
	filename, err := manager.CreateBackup("before upgrade")
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Format: backup-2025-12-25-143023.000.json
	if filename != "backup-2025-12-25-143023.000.json" {
		t.Errorf("unexpected filename: %s", filename)
	}

	data, err := os.ReadFile(filepath.Join(manager.BackupPath, filename))
	if err != nil {
		t.Fatalf("backup file not created: %v", err)
	}
	if !strings.Contains(string(data), `"note": "before upgrade"`) {
		t.Errorf("backup missing note: %s", data)
	}
	if !strings.Contains(string(data), `"appTheme": "forestGreen"`) {
		t.Errorf("backup missing theme: %s", data)
	}
}

func TestRestore(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SetItem(storage.KeyTheme, "casbahRock")
	store.SetItem(storage.KeyMode, "dark")

	manager := newTestManager(t, store)
	filename, err := manager.CreateBackup("")
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	store.SetItem(storage.KeyTheme, "stoneGray")
	store.RemoveItem(storage.KeyMode)
	store.SetItem(storage.KeyCommitMessages, "[]")

	snap, err := manager.Restore(filename)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if len(snap.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(snap.Items))
	}

	if v, _, _ := store.GetItem(storage.KeyTheme); v != "casbahRock" {
		t.Errorf("expected theme casbahRock, got %s", v)
	}
	if v, _, _ := store.GetItem(storage.KeyMode); v != "dark" {
		t.Errorf("expected mode dark, got %s", v)
	}
	// keys missing from the backup are left alone
	if _, ok, _ := store.GetItem(storage.KeyCommitMessages); !ok {
		t.Error("restore should not remove keys")
	}
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	manager := newTestManager(t, storage.NewMemoryStore())
	os.MkdirAll(manager.BackupPath, 0755)
	path := filepath.Join(manager.BackupPath, "backup-old.json")
	os.WriteFile(path, []byte(`{"version":"0","items":{}}`), 0644)

	if _, err := manager.Restore("backup-old.json"); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestSnapshotWithoutLister(t *testing.T) {
	type plainStore struct{ storage.Store }
	mem := storage.NewMemoryStore()
	mem.SetItem(storage.KeyMode, "light")
	mem.SetItem("unrelated", "x")

	manager := newTestManager(t, plainStore{mem})
	snap, err := manager.Snapshot("")
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[storage.KeyMode] != "light" {
		t.Errorf("expected only known keys, got %v", snap.Items)
	}
}

func TestListAndPrune(t *testing.T) {
	manager := newTestManager(t, storage.NewMemoryStore())

	names, err := manager.ListBackups()
	if err != nil || len(names) != 0 {
		t.Fatalf("expected no backups, got %v, %v", names, err)
	}

	var created []string
	for i := 0; i < 4; i++ {
		name, err := manager.CreateBackup("")
		if err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
		created = append(created, name)
	}

	names, _ = manager.ListBackups()
	if len(names) != 4 || names[0] != created[3] {
		t.Fatalf("expected newest first, got %v", names)
	}

	removed, err := manager.Prune(2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	names, _ = manager.ListBackups()
	if len(names) != 2 || names[1] != created[2] {
		t.Errorf("expected the two newest to remain, got %v", names)
	}
}

func TestCreateBackupSameTimestamp(t *testing.T) {
	store := storage.NewMemoryStore()
	manager := NewBackupManager(t.TempDir(), store)
	frozen := time.Date(2025, 12, 25, 14, 30, 22, 0, time.UTC)
	manager.now = func() time.Time { return frozen }

	store.SetItem(storage.KeyTheme, "stoneGray")
	first, err := manager.CreateBackup("first")
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	store.SetItem(storage.KeyTheme, "casbahRock")
	second, err := manager.CreateBackup("second")
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct names, both are %s", first)
	}
	if second != "backup-2025-12-25-143022.000_01.json" {
		t.Errorf("unexpected second filename: %s", second)
	}

	data, err := os.ReadFile(filepath.Join(manager.BackupPath, first))
	if err != nil {
		t.Fatalf("first backup missing: %v", err)
	}
	if !strings.Contains(string(data), `"appTheme": "stoneGray"`) {
		t.Errorf("first backup was overwritten: %s", data)
	}

	names, _ := manager.ListBackups()
	if len(names) != 2 || names[0] != second {
		t.Errorf("expected the later backup first, got %v", names)
	}
}

func TestCreateBackupUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	manager := NewBackupManager(filepath.Join(blocker, "backups"), storage.NewMemoryStore())
	if _, err := manager.CreateBackup(""); err == nil {
		t.Fatal("expected an error when the backup path is under a file")
	}
}
