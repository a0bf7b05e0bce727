package graphics

import (
	"sync"

	"gridinv/internal/assets"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// IconTextures uploads item icons on first use and keeps them by name.
// Names whose image failed to load are remembered and return 0.
type IconTextures struct {
	source assets.IconSource

	mu     sync.RWMutex
	cache  map[string]uint32
	failed map[string]error
}

// NewIconTextures creates a texture cache over source
func NewIconTextures(source assets.IconSource) *IconTextures {
	return &IconTextures{
		source: source,
		cache:  make(map[string]uint32),
		failed: make(map[string]error),
	}
}

// Get returns the texture for the named icon. Must be called on the GL
// thread.
func (t *IconTextures) Get(name string) (uint32, error) {
	t.mu.RLock()
	if tex, ok := t.cache[name]; ok {
		t.mu.RUnlock()
		return tex, nil
	}
	if err, ok := t.failed[name]; ok {
		t.mu.RUnlock()
		return 0, err
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Double check locking
	if tex, ok := t.cache[name]; ok {
		return tex, nil
	}

	img, err := t.source.Icon(name)
	if err != nil {
		t.failed[name] = err
		return 0, err
	}

	tex, _, _ := UploadTexture(img)
	t.cache[name] = tex
	return tex, nil
}

// Dispose deletes every uploaded texture
func (t *IconTextures) Dispose() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, tex := range t.cache {
		gl.DeleteTextures(1, &tex)
		delete(t.cache, name)
	}
	clear(t.failed)
}
