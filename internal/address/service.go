package address

import (
	"errors"
	"time"
)

var ErrMissingDetails = errors.New("details is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

func (s *Service) Create(userID int, label, details, phone string) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrNotFound
	}
	if details == "" {
		return Address{}, ErrMissingDetails
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Address{
		UserID:    userID,
		Label:     label,
		Details:   details,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) Update(userID, addressID int, label, details, phone string) (Address, error) {
	if userID <= 0 || addressID <= 0 {
		return Address{}, ErrNotFound
	}
	if details == "" {
		return Address{}, ErrMissingDetails
	}

	return s.repo.Update(userID, addressID, Address{
		Label:     label,
		Details:   details,
		Phone:     phone,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) Delete(userID, addressID int) error {
	if userID <= 0 || addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(userID, addressID)
}
