package database

import (
	"context"
	"time"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         string
}

func (db *Database) CreateUser(ctx context.Context, params CreateUserParams) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		params.Email, params.PasswordHash, params.Role,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, ErrEmailConflict
	}
	return id, err
}

func (db *Database) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

func (db *Database) GetAdminCount(ctx context.Context) (int64, error) {
	var count int64
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&count)
	return count, err
}
