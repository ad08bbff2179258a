package reports

// Summary is the headline block of the admin dashboard. Revenue counts
// every non-cancelled order; amounts are in centavos.
type Summary struct {
	TotalOrders       int            `json:"totalOrders"`
	CancelledOrders   int            `json:"cancelledOrders"`
	Revenue           int64          `json:"revenue"`
	AverageOrderValue int64          `json:"averageOrderValue"`
	StatusCounts      map[string]int `json:"statusCounts"`
}

// TopItem aggregates order line items by name.
type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// DailyRevenue is one day of non-cancelled order volume.
type DailyRevenue struct {
	Day     string `json:"day"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type Repository interface {
	Summary() (Summary, error)
	TopItems(limit int) ([]TopItem, error)
	RevenueByDay(days int) ([]DailyRevenue, error)
}
