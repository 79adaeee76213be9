// Package mirror keeps external observers' copies of the session state
// consistent with the engine: a status file for other local processes,
// and a websocket broadcaster for companion devices.
package mirror

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/stridewalk/stride/phase"
)

// StatusFile mirrors each snapshot into a JSON file so that commands
// like `stride status` can inspect a session owned by another process.
type StatusFile struct {
	path string
}

func NewStatusFile(path string) *StatusFile {
	return &StatusFile{path: path}
}

// Push writes the snapshot to the status file. Once the session settles
// the file is removed so a stale countdown is never reported.
func (f *StatusFile) Push(snap phase.Snapshot) {
	if snap.Phase == phase.Idle || snap.Phase == phase.Completed {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("unable to remove status file", slog.Any("error", err))
		}

		return
	}

	b, err := json.Marshal(snap)
	if err != nil {
		slog.Error("unable to marshal status", slog.Any("error", err))
		return
	}

	if err := os.WriteFile(f.path, b, 0o600); err != nil {
		slog.Error("unable to write status file", slog.Any("error", err))
	}
}

func (f *StatusFile) Resync(snap phase.Snapshot) {
	f.Push(snap)
}

// ReadStatus loads the snapshot last written by a running session. It
// returns fs.ErrNotExist when no session is active.
func ReadStatus(path string) (phase.Snapshot, error) {
	var snap phase.Snapshot

	b, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}

	err = json.Unmarshal(b, &snap)

	return snap, err
}
