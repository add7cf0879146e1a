package goldfile

import (
	"os"
	"path/filepath"
)

// Storage abstracts fixture persistence. The session treats fixture
// contents as an opaque document; interpretation belongs to the caller.
type Storage interface {
	Exists(path string) (bool, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}

// osStorage is the default Storage, backed by the local filesystem.
// Writes create missing parent directories.
type osStorage struct{}

func (osStorage) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (osStorage) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osStorage) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
