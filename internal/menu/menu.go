package menu

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("menu item not found")

// Item is one entry of the restaurant menu. Price is in centavos. Items
// with Available=false stay listed for the admin surface but must not be
// offered to customers.
type Item struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

// Repository provides access to the menu catalog.
type Repository interface {
	List() ([]Item, error)
	ListByCategory(category string) ([]Item, error)
	ListByIDs(ids []int) ([]Item, error)
	GetByID(id int) (Item, error)
	Categories() ([]string, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Item, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(category string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, 0)
	for _, it := range r.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		for _, it := range r.items {
			if it.ID == id {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Categories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, it := range r.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out, nil
}
