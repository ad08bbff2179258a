package cart

import (
	"sync"

	"github.com/restosuite/storefront-backend/internal/storage"
)

// Manager hands out one Store per storefront session. Stores are created
// lazily, loading whatever the session's slot already holds.
type Manager struct {
	mu     sync.Mutex
	slots  storage.Store
	stores map[string]*Store
}

func NewManager(slots storage.Store) *Manager {
	return &Manager{slots: slots, stores: make(map[string]*Store)}
}

// For returns the cart store bound to the given session, creating it on
// first access.
func (m *Manager) For(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := NewStore(m.slots, storage.SessionKey(sessionID, storage.CartKey))
	m.stores[sessionID] = s
	return s
}
