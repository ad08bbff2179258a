package menu

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listMenuQuery = `
        SELECT menu_item_id, name, price, category, available
        FROM menu_items
        ORDER BY menu_item_id
    `
	listByCategoryQuery = `
        SELECT menu_item_id, name, price, category, available
        FROM menu_items
        WHERE category = $1
        ORDER BY menu_item_id
    `
	listByIDsQuery = `
        SELECT menu_item_id, name, price, category, available
        FROM menu_items
        WHERE menu_item_id = ANY($1::int[])
        ORDER BY array_position($1::int[], menu_item_id)
    `
	getByIDQuery = `
        SELECT menu_item_id, name, price, category, available
        FROM menu_items
        WHERE menu_item_id = $1
    `
	categoriesQuery = `
        SELECT DISTINCT category FROM menu_items ORDER BY category
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Item, error) {
	return r.queryItems(listMenuQuery)
}

func (r *PostgresRepository) ListByCategory(category string) ([]Item, error) {
	return r.queryItems(listByCategoryQuery, category)
}

// ListByIDs returns items in the same order as the ids argument. An empty
// id list returns an empty slice without touching the database.
func (r *PostgresRepository) ListByIDs(ids []int) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}
	return r.queryItems(listByIDsQuery, pq.Array(ids))
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	var it Item
	err := r.db.QueryRow(getByIDQuery, id).Scan(&it.ID, &it.Name, &it.Price, &it.Category, &it.Available)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotFound
	}
	return it, err
}

func (r *PostgresRepository) Categories() ([]string, error) {
	rows, err := r.db.Query(categoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) queryItems(query string, args ...any) ([]Item, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Category, &it.Available); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
