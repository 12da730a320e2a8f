package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// storageKey is the fixed name the serialized cart is stored under,
// matching the browser localStorage key used by earlier versions.
const storageKey = "cart"

// FileStore keeps the cart as a single JSON document on disk, the local
// equivalent of browser localStorage.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, storageKey+".json")}
}

// Load reads the saved cart. A missing file means an empty cart; unreadable
// content is returned as an error for the caller to degrade on.
func (s *FileStore) Load() ([]Line, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *FileStore) Save(lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
