package reports

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	statusCountsQuery = `
        SELECT status, count(*), COALESCE(SUM(total), 0)
        FROM order_archive
        GROUP BY status
    `
	// items is a jsonb array of {id, name, price, qty}
	topItemsQuery = `
        SELECT item->>'name' AS name,
               SUM((item->>'qty')::int) AS quantity,
               SUM((item->>'price')::bigint * (item->>'qty')::int) AS revenue
        FROM order_archive, jsonb_array_elements(items) AS item
        WHERE status <> 'cancelled'
        GROUP BY item->>'name'
        ORDER BY quantity DESC, revenue DESC
        LIMIT $1
    `
	// created_at is stored as RFC3339 text, so the first ten characters
	// are the calendar day
	revenueByDayQuery = `
        SELECT substr(created_at, 1, 10) AS day, count(*), COALESCE(SUM(total), 0)
        FROM order_archive
        WHERE status <> 'cancelled'
        GROUP BY day
        ORDER BY day DESC
        LIMIT $1
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Summary() (Summary, error) {
	rows, err := r.db.Query(statusCountsQuery)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	s := Summary{StatusCounts: make(map[string]int)}
	for rows.Next() {
		var status string
		var count int
		var total int64
		if err := rows.Scan(&status, &count, &total); err != nil {
			return Summary{}, err
		}
		s.StatusCounts[status] = count
		s.TotalOrders += count
		if status == "cancelled" {
			s.CancelledOrders += count
		} else {
			s.Revenue += total
		}
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	if paid := s.TotalOrders - s.CancelledOrders; paid > 0 {
		s.AverageOrderValue = s.Revenue / int64(paid)
	}
	return s, nil
}

func (r *PostgresRepository) TopItems(limit int) ([]TopItem, error) {
	rows, err := r.db.Query(topItemsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TopItem, 0)
	for rows.Next() {
		var it TopItem
		if err := rows.Scan(&it.Name, &it.Quantity, &it.Revenue); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) RevenueByDay(days int) ([]DailyRevenue, error) {
	rows, err := r.db.Query(revenueByDayQuery, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DailyRevenue, 0)
	for rows.Next() {
		var d DailyRevenue
		if err := rows.Scan(&d.Day, &d.Orders, &d.Revenue); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
