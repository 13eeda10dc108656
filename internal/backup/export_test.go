// SPDX-License-Identifier: MIT
package backup

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/thatcatcamp/workbench/internal/storage"
)

func TestExportImport(t *testing.T) {
	snap := &Snapshot{
		Timestamp: time.Date(2025, 12, 25, 14, 30, 22, 0, time.UTC),
		Version:   FormatVersion,
		Items:     map[string]string{storage.KeyMode: "dark"},
	}

	var buf bytes.Buffer
	if err := Export(&buf, snap); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !got.Timestamp.Equal(snap.Timestamp) || got.Items[storage.KeyMode] != "dark" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestImportMalformed(t *testing.T) {
	if _, err := Import(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected error for malformed backup")
	}
}

func TestApply(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := &Snapshot{Version: FormatVersion, Items: map[string]string{"a": "1", "b": "2"}}

	if err := Apply(store, snap); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	keys, _ := store.Keys()
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %v", keys)
	}
}
