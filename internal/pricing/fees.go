package pricing

import "fmt"

// All monetary amounts are integer centavos so fee math stays exact; the
// two-decimal display value is derived only at the formatting edge.
const (
	// SmallOrderThreshold is the subtotal under which the small-order fee
	// applies. A subtotal exactly at the threshold pays no fee.
	SmallOrderThreshold int64 = 10900
	SmallOrderFee       int64 = 2000
	DeliveryFee         int64 = 7400
	// ServiceFeePercent is charged on every order regardless of type.
	ServiceFeePercent int64 = 5
)

// Quote is the fee breakdown for one cart snapshot.
type Quote struct {
	Subtotal      int64 `json:"subtotal"`
	SmallOrderFee int64 `json:"smallOrderFee"`
	DeliveryFee   int64 `json:"deliveryFee"`
	ServiceFee    int64 `json:"serviceFee"`
	GrandTotal    int64 `json:"grandTotal"`
}

// QuoteFor computes the full fee breakdown for a subtotal. delivery selects
// the flat delivery surcharge; pickup and dine-in orders skip it. An empty
// cart (zero subtotal) quotes zero across the board.
func QuoteFor(subtotal int64, delivery bool) Quote {
	q := Quote{Subtotal: subtotal}
	if subtotal == 0 {
		return q
	}
	if subtotal < SmallOrderThreshold {
		q.SmallOrderFee = SmallOrderFee
	}
	if delivery {
		q.DeliveryFee = DeliveryFee
	}
	q.ServiceFee = serviceFee(subtotal)
	q.GrandTotal = q.Subtotal + q.SmallOrderFee + q.DeliveryFee + q.ServiceFee
	return q
}

// serviceFee rounds half up to the nearest centavo.
func serviceFee(subtotal int64) int64 {
	return (subtotal*ServiceFeePercent + 50) / 100
}

// FormatCents renders centavos with exactly two fraction digits.
func FormatCents(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
