package user

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
        SELECT user_id, email, password, name, phone, role, avatar_pic, created_at, updated_at
        FROM users
        ORDER BY user_id
    `
	getUserByIDQuery = `
        SELECT user_id, email, password, name, phone, role, avatar_pic, created_at, updated_at
        FROM users
        WHERE user_id = $1
    `
	getUserByEmailQuery = `
        SELECT user_id, email, password, name, phone, role, avatar_pic, created_at, updated_at
        FROM users
        WHERE lower(email) = lower($1)
    `
	insertUserQuery = `
        INSERT INTO users (email, password, name, phone, role, avatar_pic, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING user_id
    `
	updateUserQuery = `
        UPDATE users
        SET email = $1,
            name = $2,
            phone = $3,
            role = $4,
            avatar_pic = $5,
            updated_at = $6
        WHERE user_id = $7
    `
	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, u)
	}

	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *PostgresRepository) Create(user User) (User, error) {
	avatar := sql.NullString{}
	if user.AvatarPic != nil {
		avatar = sql.NullString{String: *user.AvatarPic, Valid: true}
	}

	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.Email,
		user.Password,
		user.Name,
		user.Phone,
		user.Role,
		avatar,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	var avatarArg any
	if userUpdate.AvatarPic != nil {
		avatarArg = *userUpdate.AvatarPic
	}

	result, err := r.db.Exec(
		updateUserQuery,
		userUpdate.Email,
		userUpdate.Name,
		userUpdate.Phone,
		userUpdate.Role,
		avatarArg,
		userUpdate.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
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

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	var avatar, createdAt, updatedAt sql.NullString

	if err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.Name,
		&u.Phone,
		&u.Role,
		&avatar,
		&createdAt,
		&updatedAt,
	); err != nil {
		return User{}, err
	}

	if avatar.Valid {
		u.AvatarPic = &avatar.String
	}
	u.CreatedAt = createdAt.String
	u.UpdatedAt = updatedAt.String

	return u, nil
}
