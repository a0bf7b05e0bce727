// Package assets loads item icons from disk.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
)

// IconSource resolves an item image name to a decoded icon
type IconSource interface {
	Icon(name string) (image.Image, error)
}

// IconStore decodes <dir>/<name>.png once per name and keeps the
// result for the life of the process.
type IconStore struct {
	dir string

	mu    sync.RWMutex
	cache map[string]image.Image
}

// NewIconStore creates a store rooted at dir
func NewIconStore(dir string) *IconStore {
	return &IconStore{
		dir:   dir,
		cache: make(map[string]image.Image),
	}
}

// Icon returns the cached icon for name, loading it on first use.
func (s *IconStore) Icon(name string) (image.Image, error) {
	s.mu.RLock()
	if img, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double check locking
	if img, ok := s.cache[name]; ok {
		return img, nil
	}

	img, err := decode(filepath.Join(s.dir, name+".png"))
	if err != nil {
		return nil, err
	}
	s.cache[name] = img
	return img, nil
}

func decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
	}
	return img, nil
}
