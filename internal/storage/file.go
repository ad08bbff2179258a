package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists each slot as a JSON file under a data directory. This
// is the server-side stand-in for browser localStorage: slots survive a
// process restart the way the original cart survived a page reload.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) Read(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (f *FileStore) Write(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, value, 0o644)
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// path maps a slot key to a file. Session-scoped keys ("42/rs_cart_v1")
// become one directory per session.
func (f *FileStore) path(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = sanitize(p)
	}
	parts[len(parts)-1] += ".json"
	return filepath.Join(append([]string{f.dir}, parts...)...)
}

func sanitize(part string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		}
		return '_'
	}, part)
}
