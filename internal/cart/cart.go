package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/restosuite/storefront-backend/internal/storage"
)

// LineItem is one distinct menu item and its quantity in a cart. Price is
// the unit price in centavos captured when the item was added; it is not
// re-fetched on later quantity updates.
type LineItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// Item is the menu-shaped input to AddItem.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Store holds one session's cart. Items keep insertion order for stable
// rendering; at most one line item exists per menu item id. Every mutation
// persists the full item list to the slot; persistence failures are logged
// and swallowed so the in-memory cart stays usable.
type Store struct {
	mu    sync.Mutex
	items []LineItem
	slot  storage.Store
	key   string
}

// NewStore loads the cart persisted under key, treating a missing or
// corrupt slot as an empty cart.
func NewStore(slot storage.Store, key string) *Store {
	s := &Store{slot: slot, key: key}
	data, err := slot.Read(key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("cart: could not read slot %s: %v", key, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		log.Printf("cart: corrupt slot %s, starting empty: %v", key, err)
		s.items = nil
	}
	return s
}

// AddItem appends a new line item, or increments the quantity when an item
// with the same id is already in the cart. A non-positive qty defaults to 1.
func (s *Store) AddItem(item Item, qty int) {
	if qty <= 0 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Qty += qty
			s.persist()
			return
		}
	}
	s.items = append(s.items, LineItem{ID: item.ID, Name: item.Name, Price: item.Price, Qty: qty})
	s.persist()
}

// UpdateQty sets a line item's quantity. A qty of zero or less removes the
// line item; a qty-0 row never stays in the cart.
func (s *Store) UpdateQty(id string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if qty <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Qty = qty
		}
		s.persist()
		return
	}
}

// RemoveItem deletes the line item if present. Removing an absent id is a
// no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Snapshot is an alias of Items named for its order-creation use: the
// returned slice is detached from the cart, so later cart mutations never
// reach a past order.
func (s *Store) Snapshot() []LineItem {
	return s.Items()
}

// Count is the total number of units across all line items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Qty
	}
	return n
}

// Subtotal recomputes the price*qty sum on every call. Fees are a
// checkout-time concern and never included here.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.Price * int64(it.Qty)
	}
	return total
}

func (s *Store) snapshot() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// persist writes the full item list to the slot. Callers hold the mutex.
// Failures are soft: the cart keeps working without durability.
func (s *Store) persist() {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		log.Printf("cart: could not encode slot %s: %v", s.key, err)
		return
	}
	if err := s.slot.Write(s.key, data); err != nil {
		log.Printf("cart: could not write slot %s: %v", s.key, err)
	}
}
