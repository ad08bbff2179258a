package order

import (
	"database/sql"
	"encoding/json"
)

// PostgresArchive mirrors created orders into Postgres for the admin and
// reporting surfaces.
//
// Table layout expected:
//
//	order_id text primary key,
//	user_id text,
//	items jsonb not null default '[]',
//	total bigint not null default 0,
//	type text,
//	status text,
//	created_at text
type PostgresArchive struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
        INSERT INTO order_archive (order_id, user_id, items, total, type, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (order_id) DO NOTHING
    `
	listOrdersQuery = `
        SELECT order_id, user_id, items, total, type, status, created_at
        FROM order_archive
        ORDER BY created_at DESC
    `
	getOrderQuery = `
        SELECT order_id, user_id, items, total, type, status, created_at
        FROM order_archive
        WHERE order_id = $1
    `
	// guarded compare-and-set keeps concurrent admin actions from racing a
	// transition; zero rows affected means the order moved on already.
	updateStatusQuery = `
        UPDATE order_archive SET status = $3 WHERE order_id = $1 AND status = $2
    `
)

func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{db: db}
}

func (a *PostgresArchive) Archive(ord Order) error {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return err
	}
	_, err = a.db.Exec(insertOrderQuery,
		ord.ID, ord.UserID, items, ord.Total, string(ord.Type), string(ord.Status), ord.CreatedAt)
	return err
}

func (a *PostgresArchive) List() ([]Order, error) {
	rows, err := a.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (a *PostgresArchive) Get(orderID string) (Order, error) {
	return scanOrder(a.db.QueryRow(getOrderQuery, orderID).Scan)
}

// UpdateStatusGuard moves an order from one status to another and reports
// how many rows changed.
func (a *PostgresArchive) UpdateStatusGuard(orderID string, from, to Status) (int64, error) {
	res, err := a.db.Exec(updateStatusQuery, orderID, string(from), string(to))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanOrder(scan func(dest ...any) error) (Order, error) {
	var ord Order
	var items []byte
	var typ, status string
	if err := scan(&ord.ID, &ord.UserID, &items, &ord.Total, &typ, &status, &ord.CreatedAt); err != nil {
		return Order{}, err
	}
	ord.Type = Type(typ)
	ord.Status = Status(status)
	if err := json.Unmarshal(items, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}
