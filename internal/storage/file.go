package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores one file per key under a directory. Writes go to a temp
// file in the same directory and are renamed into place, so a value is
// either fully replaced or left untouched.
type FileKV struct {
	dir string
}

// NewFileKV creates a store rooted at dir. The directory is created on the
// first write.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value for key. A missing file means the key is absent.
func (s *FileKV) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set atomically replaces the value for key.
func (s *FileKV) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
