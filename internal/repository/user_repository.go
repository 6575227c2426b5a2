package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByCredentials returns the user matching a username and password hash,
// or nil when none matches.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, fullname FROM users WHERE username = ? AND password = ?",
		username, passwordHash).Scan(&u.ID, &u.Username, &u.FullName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}

// UsernameExists reports whether a username is already taken.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM users WHERE username = ?", username).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return true, nil
}

// CreateUser inserts a new user and returns its id.
func (r *UserRepository) CreateUser(ctx context.Context, username, passwordHash, fullname string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password, fullname) VALUES (?, ?, ?)",
		username, passwordHash, fullname)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read created user id: %w", err)
	}
	return id, nil
}
