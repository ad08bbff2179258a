package order

import (
	"github.com/restosuite/storefront-backend/internal/cart"
)

// Type is the closed set of order types. Scheduled delivery is a delivery
// sub-option carried by the checkout flow, not a fourth type.
type Type string

const (
	TypeDelivery Type = "delivery"
	TypeDineIn   Type = "dine-in"
	TypePickup   Type = "pickup"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDelivery, TypeDineIn, TypePickup:
		return true
	}
	return false
}

// Status values form a forward-only lifecycle; cancelled is reachable from
// any non-terminal status.
type Status string

const (
	StatusReceived       Status = "received"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

var statusRank = map[Status]int{
	StatusReceived:       0,
	StatusPreparing:      1,
	StatusReady:          2,
	StatusOutForDelivery: 3,
	StatusCompleted:      4,
}

func (s Status) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether an order may move from one status to the
// next. The lifecycle only advances one step at a time; cancelling is
// allowed from any non-terminal status.
func CanTransition(from, to Status) bool {
	if to == StatusCancelled {
		return !from.Terminal()
	}
	fromRank, okFrom := statusRank[from]
	toRank, okTo := statusRank[to]
	return okFrom && okTo && toRank == fromRank+1
}

// Order is an immutable snapshot of a cart at creation time. Once appended
// to the persisted list it is never mutated by the cart subsystem; status
// transitions belong to the admin surface, which works on the archive.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId,omitempty"`
	Items     []cart.LineItem `json:"items"`
	Total     int64           `json:"total"`
	Type      Type            `json:"type"`
	Status    Status          `json:"status"`
	CreatedAt string          `json:"createdAt"`
}
