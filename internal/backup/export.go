package backup

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thatcatcamp/workbench/internal/storage"
)

// Export writes snap as indented JSON
func Export(w io.Writer, snap *Snapshot) error {
	data, err := snap.MarshalIndent()
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Import reads a snapshot and checks its version
func Import(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if snap.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported backup version %q", snap.Version)
	}
	return &snap, nil
}

// Apply writes every snapshot item into store
func Apply(store storage.Store, snap *Snapshot) error {
	for key, value := range snap.Items {
		if err := store.SetItem(key, value); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}
	return nil
}
