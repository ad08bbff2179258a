package address

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("address not found")

type Repository interface {
	ListByUser(userID int) ([]Address, error)
	Create(addr Address) (Address, error)
	Update(userID, addressID int, addr Address) (Address, error)
	Delete(userID, addressID int) error
}

type InMemoryRepository struct {
	mu     sync.Mutex
	byUser map[int][]Address
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byUser: make(map[int][]Address), nextID: 1}
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addrs := r.byUser[userID]
	out := make([]Address, len(addrs))
	copy(out, addrs)
	return out, nil
}

func (r *InMemoryRepository) Create(addr Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addr.ID = r.nextID
	r.nextID++
	r.byUser[addr.UserID] = append(r.byUser[addr.UserID], addr)
	return addr, nil
}

func (r *InMemoryRepository) Update(userID, addressID int, update Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.byUser[userID] {
		if a.ID == addressID {
			a.Label = update.Label
			a.Details = update.Details
			a.Phone = update.Phone
			a.UpdatedAt = update.UpdatedAt
			r.byUser[userID][i] = a
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(userID, addressID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addrs := r.byUser[userID]
	for i, a := range addrs {
		if a.ID == addressID {
			r.byUser[userID] = append(addrs[:i], addrs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
