// Package manifest tracks which exercises have been generated for a
// project. The manifest lives at .exgen/manifest.json and is rewritten
// atomically on every update.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mbenitez/exgen/internal/fsutil"
)

// exerciseNamespace seeds deterministic exercise UIDs: the same canonical
// filename always maps to the same UUID, so re-generating an exercise
// updates its record instead of adding a duplicate.
var exerciseNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("exgen/exercise-id/v1"))

// Record describes one generated exercise.
type Record struct {
	UID     string    `json:"uid"`
	File    string    `json:"file"`
	Source  string    `json:"source"`
	Chapter int       `json:"chapter"`
	Section string    `json:"section,omitempty"`
	Number  int       `json:"number"`
	Variant string    `json:"variant,omitempty"`
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Created time.Time `json:"created"`
}

// Manifest is the full set of records, oldest first.
type Manifest struct {
	Exercises []Record `json:"exercises"`
}

// UID returns the deterministic identifier for a canonical filename.
func UID(filename string) string {
	return uuid.NewSHA1(exerciseNamespace, []byte(filename)).String()
}

func manifestPath(exgenDir string) string {
	return filepath.Join(exgenDir, "manifest.json")
}

// Load reads the manifest from the .exgen directory. Returns an empty
// manifest if the file does not exist yet.
func Load(exgenDir string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath(exgenDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes the manifest to the .exgen directory.
func (m *Manifest) Save(exgenDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(manifestPath(exgenDir), data, 0644)
}

// Upsert adds r, replacing any existing record with the same UID.
func (m *Manifest) Upsert(r Record) {
	for i := range m.Exercises {
		if m.Exercises[i].UID == r.UID {
			m.Exercises[i] = r
			return
		}
	}
	m.Exercises = append(m.Exercises, r)
}

// Find returns the record with the given UID, or nil.
func (m *Manifest) Find(uid string) *Record {
	for i := range m.Exercises {
		if m.Exercises[i].UID == uid {
			return &m.Exercises[i]
		}
	}
	return nil
}
