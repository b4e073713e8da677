package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/youjiac/baseball/internal/team"
)

const snapshotFile = "cpbl_teams.json"

// ErrNoSnapshot is returned when no snapshot has been persisted yet.
var ErrNoSnapshot = errors.New("no persisted snapshot")

// ErrCorrupt is returned when a snapshot file exists but cannot be parsed.
var ErrCorrupt = errors.New("corrupt snapshot")

// Storage handles persistence of team snapshots under one data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage instance, expanding ~ and creating the directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// Path returns the snapshot file path.
func (s *Storage) Path() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

// Load reads the persisted snapshot. A missing file yields ErrNoSnapshot;
// an unparseable file yields an error wrapping ErrCorrupt.
func (s *Storage) Load() (*team.Snapshot, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot team.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, err)
	}

	if snapshot.Teams == nil {
		snapshot.Teams = make(map[team.Code]*team.TeamRecord)
	}
	if snapshot.HeadToHead == nil {
		snapshot.HeadToHead = make(map[string][]team.GameResult)
	}

	return &snapshot, nil
}

// Save persists a snapshot atomically. The captured-at timestamp is set here
// so the stored document carries its own age, independent of file mtimes.
func (s *Storage) Save(snapshot *team.Snapshot) error {
	snapshot.CapturedAt = time.Now().UTC()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, snapshotFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Delete removes the persisted snapshot. Used for corrupt-file recovery;
// a missing file is not an error.
func (s *Storage) Delete() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

// Age returns how old the persisted snapshot is. The stored captured-at
// timestamp is preferred; the file modification time is the fallback for
// snapshots written by older versions.
func (s *Storage) Age(snapshot *team.Snapshot) (time.Duration, error) {
	if snapshot != nil && !snapshot.CapturedAt.IsZero() {
		return time.Since(snapshot.CapturedAt), nil
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		return 0, fmt.Errorf("checking snapshot age: %w", err)
	}
	return time.Since(info.ModTime()), nil
}
