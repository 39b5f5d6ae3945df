package repository

import (
	"context"
	"errors"
	"fmt"

	"careerconnect/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByRole(ctx context.Context, role string) ([]model.User, error)
	UpdateProfile(ctx context.Context, id int, profile string) error
	UpdateResume(ctx context.Context, id int, filename string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, password_hash, role, resume, profile, created_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, email, password_hash, role, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by their email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.Resume, &user.Profile, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.Resume, &user.Profile, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByRole retrieves every user with the given role, in insertion order
func (r *userRepository) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by role: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
			&u.Resume, &u.Profile, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UpdateProfile overwrites the user's free-text profile
func (r *userRepository) UpdateProfile(ctx context.Context, id int, profile string) error {
	sql := `UPDATE users SET profile = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, profile, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for profile update")
	}
	return nil
}

// UpdateResume overwrites the user's stored resume filename
func (r *userRepository) UpdateResume(ctx context.Context, id int, filename string) error {
	sql := `UPDATE users SET resume = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, filename, id)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for resume update")
	}
	return nil
}
