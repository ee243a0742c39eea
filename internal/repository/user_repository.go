package repository

import (
	"catalog-service/internal/entity"
	"context"
	"database/sql"
	"errors"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

// CreateUser inserts a user inside a transaction after checking that the
// username is free. The check and the insert share the transaction; any
// failure rolls it back. The UNIQUE constraint on the column remains the
// backstop if two creations of the same username race past the check.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	existsQuery := `SELECT id FROM users WHERE username = ? LIMIT 1`
	var existingID int
	err = tx.QueryRowContext(ctx, existsQuery, user.Username).Scan(&existingID)
	if err == nil {
		tx.Rollback()
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return nil, err
	}

	insertQuery := `INSERT INTO users (username, password) VALUES (?, ?)`
	res, err := tx.ExecContext(ctx, insertQuery, user.Username, user.Password)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

// GetUsers retrieves every user.
func (r *UserRepository) GetUsers(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, username, password FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// An empty result serializes as [], not null.
	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		err := rows.Scan(&user.ID, &user.Username, &user.Password)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// DeleteUserByID deletes a user. Deleting an unknown id is a no-op.
func (r *UserRepository) DeleteUserByID(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
