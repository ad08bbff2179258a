package checkout

import (
	"errors"
	"log"
	"time"

	"github.com/restosuite/storefront-backend/internal/cart"
	"github.com/restosuite/storefront-backend/internal/order"
	"github.com/restosuite/storefront-backend/internal/pricing"
)

// Delivery options for delivery-type orders.
const (
	OptionStandard  = "standard"
	OptionScheduled = "scheduled"
)

// Payment methods offered at checkout.
const (
	PaymentCOD     = "cod"
	PaymentGCash   = "gcash"
	PaymentPayMaya = "paymaya"
)

// TimeSlots lists the bookable scheduled-delivery windows.
var TimeSlots = []string{
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
	"6:00 PM - 7:00 PM",
	"7:00 PM - 8:00 PM",
	"8:00 PM - 9:00 PM",
}

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownType     = errors.New("unknown order type")
	ErrMissingAddress  = errors.New("delivery address is required")
	ErrUnknownOption   = errors.New("unknown delivery option")
	ErrMissingSchedule = errors.New("scheduled delivery needs a date and time slot")
	ErrUnknownSlot     = errors.New("unknown time slot")
	ErrUnknownPayment  = errors.New("unknown payment method")
)

// Request carries everything the checkout screen collects. The scheduled
// fields only matter when DeliveryOption is "scheduled".
type Request struct {
	Type            order.Type `json:"type"`
	DeliveryAddress string     `json:"deliveryAddress"`
	NoteToDriver    string     `json:"noteToDriver"`
	DeliveryOption  string     `json:"deliveryOption"`
	ScheduledDate   string     `json:"scheduledDate"`
	ScheduledSlot   string     `json:"scheduledTime"`
	PaymentMethod   string     `json:"paymentMethod"`
}

// Validate enforces the business rules the order factory deliberately does
// not: the factory trusts its caller, and this is the caller.
func (r Request) Validate(itemCount int) error {
	if itemCount == 0 {
		return ErrEmptyCart
	}
	if !r.Type.Valid() {
		return ErrUnknownType
	}
	switch r.PaymentMethod {
	case PaymentCOD, PaymentGCash, PaymentPayMaya:
	default:
		return ErrUnknownPayment
	}

	if r.Type != order.TypeDelivery {
		return nil
	}

	if r.DeliveryAddress == "" {
		return ErrMissingAddress
	}
	switch r.DeliveryOption {
	case OptionStandard:
	case OptionScheduled:
		if r.ScheduledDate == "" || r.ScheduledSlot == "" {
			return ErrMissingSchedule
		}
		if _, err := time.Parse("2006-01-02", r.ScheduledDate); err != nil {
			return ErrMissingSchedule
		}
		if !validSlot(r.ScheduledSlot) {
			return ErrUnknownSlot
		}
	default:
		return ErrUnknownOption
	}
	return nil
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Result is what the checkout returns to the storefront: the fee breakdown
// it showed the user at the moment of ordering.
type Result struct {
	Quote pricing.Quote `json:"quote"`
}

// Service runs the rich checkout flow. It validates, prices the cart and
// clears it, but deliberately does not persist the rich order data: the
// collected address, schedule and payment selections are only logged. The
// plain order flow (order.Factory) is the one that persists; keeping the
// two tiers apart mirrors how the storefront behaves today.
type Service struct {
	carts *cart.Manager
}

func NewService(carts *cart.Manager) *Service {
	return &Service{carts: carts}
}

// PlaceOrder checks the request against the session cart, computes the
// final quote and empties the cart.
func (s *Service) PlaceOrder(sessionID string, req Request) (Result, error) {
	store := s.carts.For(sessionID)
	if err := req.Validate(store.Count()); err != nil {
		return Result{}, err
	}

	quote := pricing.QuoteFor(store.Subtotal(), req.Type == order.TypeDelivery)

	// rich order data is a prototype path: log it, do not persist it
	log.Printf("checkout: order placed session=%s type=%s option=%s payment=%s scheduled=%s %s grandTotal=%s",
		sessionID, req.Type, req.DeliveryOption, req.PaymentMethod,
		req.ScheduledDate, req.ScheduledSlot, pricing.FormatCents(quote.GrandTotal))

	store.Clear()
	return Result{Quote: quote}, nil
}

// QuoteCart prices the current cart for an order type without mutating it.
func (s *Service) QuoteCart(sessionID string, typ order.Type) (pricing.Quote, error) {
	if !typ.Valid() {
		return pricing.Quote{}, ErrUnknownType
	}
	store := s.carts.For(sessionID)
	return pricing.QuoteFor(store.Subtotal(), typ == order.TypeDelivery), nil
}
