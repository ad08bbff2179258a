package user

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	List() []User
	GetByID(id int) (User, error)
	GetByEmail(email string) (User, error)
	Create(user User) (User, error)
	Update(id int, user User) (User, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{users: make([]User, 0, len(seed))}

	maxID := 0
	for _, u := range seed {
		repo.users = append(repo.users, u)
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users
}

func (r *InMemoryRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}

	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) Update(id int, userUpdate User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			u.Email = userUpdate.Email
			u.Name = userUpdate.Name
			u.Phone = userUpdate.Phone
			u.AvatarPic = userUpdate.AvatarPic
			if userUpdate.Role != "" {
				u.Role = userUpdate.Role
			}
			if userUpdate.Password != "" {
				u.Password = userUpdate.Password
			}
			if userUpdate.UpdatedAt != "" {
				u.UpdatedAt = userUpdate.UpdatedAt
			}
			r.users[i] = u
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
