package order

import (
	"sync"

	"github.com/restosuite/storefront-backend/internal/cart"
	"github.com/restosuite/storefront-backend/internal/storage"
)

// Manager hands out one Factory per storefront session, pairing the
// session's cart store with its order slot.
type Manager struct {
	mu        sync.Mutex
	slots     storage.Store
	carts     *cart.Manager
	archive   Archiver
	factories map[string]*Factory
}

func NewManager(slots storage.Store, carts *cart.Manager, archive Archiver) *Manager {
	return &Manager{
		slots:     slots,
		carts:     carts,
		archive:   archive,
		factories: make(map[string]*Factory),
	}
}

func (m *Manager) For(sessionID string) *Factory {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.factories[sessionID]; ok {
		return f
	}
	f := NewFactory(
		m.carts.For(sessionID),
		m.slots,
		storage.SessionKey(sessionID, storage.OrdersKey),
		sessionID,
		m.archive,
	)
	m.factories[sessionID] = f
	return f
}
