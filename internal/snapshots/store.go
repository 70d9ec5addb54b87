package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nhl-nationality-service/internal/domain"
)

const (
	globalSnapshotFile = "nhl_players.json"
	filteredFileFmt    = "%s_players.json"
)

// Store persists the roster index as a single JSON document on disk.
// Saves are whole-file replaces; loads are whole-file parses. There is
// no schema versioning and no locking — single writer, single reader.
type Store struct {
	basePath string
}

// NewStore constructs a store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Path returns the snapshot file for a nationality filter; the empty
// filter maps to the global league snapshot.
func (s *Store) Path(filter string) string {
	if filter == "" {
		return filepath.Join(s.basePath, globalSnapshotFile)
	}
	return filepath.Join(s.basePath, fmt.Sprintf(filteredFileFmt, filter))
}

// Exists reports whether a snapshot for the filter is on disk.
func (s *Store) Exists(filter string) bool {
	if s == nil {
		return false
	}
	_, err := os.Stat(s.Path(filter))
	return err == nil
}

// Save serializes the index to the filter's snapshot file. The write is
// atomic: a temp file is written and renamed over the target.
func (s *Store) Save(index domain.RosterIndex, filter string) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}

	target := s.Path(filter)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Load reads the filter's snapshot file back into a RosterIndex.
func (s *Store) Load(filter string) (domain.RosterIndex, error) {
	if s == nil {
		return domain.RosterIndex{}, errors.New("snapshot store not configured")
	}

	f, err := os.Open(s.Path(filter))
	if err != nil {
		return domain.RosterIndex{}, err
	}
	defer f.Close()

	var index domain.RosterIndex
	if err := json.NewDecoder(f).Decode(&index); err != nil {
		return domain.RosterIndex{}, err
	}
	return index, nil
}
