package address

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listAddressesQuery = `
        SELECT address_id, user_id, label, details, phone, created_at, updated_at
        FROM addresses
        WHERE user_id = $1
        ORDER BY address_id
    `
	insertAddressQuery = `
        INSERT INTO addresses (user_id, label, details, phone, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING address_id
    `
	updateAddressQuery = `
        UPDATE addresses
        SET label = $3, details = $4, phone = $5, updated_at = $6
        WHERE user_id = $1 AND address_id = $2
    `
	deleteAddressQuery = `DELETE FROM addresses WHERE user_id = $1 AND address_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Details, &a.Phone, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(addr Address) (Address, error) {
	err := r.db.QueryRow(
		insertAddressQuery,
		addr.UserID, addr.Label, addr.Details, addr.Phone, addr.CreatedAt, addr.UpdatedAt,
	).Scan(&addr.ID)
	if err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (r *PostgresRepository) Update(userID, addressID int, update Address) (Address, error) {
	result, err := r.db.Exec(
		updateAddressQuery,
		userID, addressID, update.Label, update.Details, update.Phone, update.UpdatedAt,
	)
	if err != nil {
		return Address{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Address{}, err
	}
	if affected == 0 {
		return Address{}, ErrNotFound
	}

	update.ID = addressID
	update.UserID = userID
	return update, nil
}

func (r *PostgresRepository) Delete(userID, addressID int) error {
	result, err := r.db.Exec(deleteAddressQuery, userID, addressID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
