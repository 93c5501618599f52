package bookpesa

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadStore opens the store persisted at path. A missing file yields an
// empty store; an unreadable or corrupt one is logged and also yields an
// empty store, so a damaged data file never prevents startup. The returned
// store persists back to the same path after every mutation.
func LoadStore(path string) *Store {
	s := loadStoreFile(path)
	s.path = path
	return s
}

func loadStoreFile(path string) *Store {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore()
	}
	if err != nil {
		log.Printf("warning, could not read data file %q, starting empty: %v", path, err)
		return NewStore()
	}
	defer f.Close()

	s, err := DecodeStore(f)
	if err != nil {
		log.Printf("warning, data file %q is corrupt, starting empty: %v", path, err)
		return NewStore()
	}
	return s
}

// SaveStore rewrites the whole store snapshot at path.
func SaveStore(path string, s *Store) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for data file %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening data file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeStore(f, s)
}
