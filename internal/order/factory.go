package order

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/restosuite/storefront-backend/internal/cart"
	"github.com/restosuite/storefront-backend/internal/storage"
)

// Archiver receives a copy of every created order for the admin/reporting
// side. Archiving is best-effort; the slot list stays the storefront's
// source of truth.
type Archiver interface {
	Archive(ord Order) error
}

// Factory turns the session cart into persisted orders. It trusts its
// caller: no validation happens here, and an empty cart produces a
// zero-item order. The checkout layer enforces business rules before
// calling CreateOrder.
type Factory struct {
	cart    *cart.Store
	slot    storage.Store
	key     string
	userID  string
	archive Archiver

	now   func() time.Time
	newID func() string
}

// NewFactory binds a factory to one session's cart and order slot. archive
// may be nil. userID tags archived orders with their owner and is empty for
// guests.
func NewFactory(c *cart.Store, slot storage.Store, key, userID string, archive Archiver) *Factory {
	return &Factory{
		cart:    c,
		slot:    slot,
		key:     key,
		userID:  userID,
		archive: archive,
		now:     time.Now,
		newID:   generateID,
	}
}

// CreateOrder snapshots the cart into a new order, prepends it to the
// persisted list, clears the cart and returns the order. A slot read
// failure degrades to an empty history; a write failure is logged and the
// created order is still returned so the caller can navigate to tracking.
func (f *Factory) CreateOrder(typ Type) Order {
	items := f.cart.Snapshot()
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Qty)
	}

	ord := Order{
		ID:        f.newID(),
		UserID:    f.userID,
		Items:     items,
		Total:     total,
		Type:      typ,
		Status:    StatusReceived,
		CreatedAt: f.now().UTC().Format(time.RFC3339),
	}

	list := append([]Order{ord}, f.Orders()...)
	if data, err := json.Marshal(list); err != nil {
		log.Printf("order: could not encode slot %s: %v", f.key, err)
	} else if err := f.slot.Write(f.key, data); err != nil {
		log.Printf("order: could not write slot %s: %v", f.key, err)
	}

	f.cart.Clear()

	if f.archive != nil {
		if err := f.archive.Archive(ord); err != nil {
			log.Printf("order: could not archive %s: %v", ord.ID, err)
		}
	}

	return ord
}

// Orders returns the persisted order list, most recent first. Missing or
// corrupt slots read as an empty history rather than blocking checkout.
func (f *Factory) Orders() []Order {
	data, err := f.slot.Read(f.key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("order: could not read slot %s: %v", f.key, err)
		}
		return []Order{}
	}
	var list []Order
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("order: corrupt slot %s, treating as empty: %v", f.key, err)
		return []Order{}
	}
	return list
}

// Get finds one order in the session's history.
func (f *Factory) Get(id string) (Order, bool) {
	for _, ord := range f.Orders() {
		if ord.ID == id {
			return ord, true
		}
	}
	return Order{}, false
}

// generateID builds a timestamp-plus-random-suffix id, unique within a
// session's order list. No cross-device guarantee is needed.
func generateID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
