package repositories

import (
	"database/sql"
	"errors"

	"book-catalog/internal/database"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *database.User) error {
	query := `
        INSERT INTO users (username, email, hashed_password, role, is_active)
        VALUES (?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, user.Username, user.Email,
		user.HashedPassword, user.Role, user.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves the first active user with the given username
func (r *UserRepository) GetByUsername(username string) (*database.User, error) {
	query := `
        SELECT id, username, email, hashed_password, role, is_active
        FROM users
        WHERE username = ? AND is_active = true
    `

	var user database.User
	err := r.db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.HashedPassword, &user.Role, &user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*database.User, error) {
	query := `
        SELECT id, username, email, hashed_password, role, is_active
        FROM users
        WHERE email = ? AND is_active = true
    `

	var user database.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.HashedPassword, &user.Role, &user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(userID int64) (*database.User, error) {
	query := `
        SELECT id, username, email, hashed_password, role, is_active
        FROM users
        WHERE id = ?
    `

	var user database.User
	err := r.db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.HashedPassword, &user.Role, &user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Delete removes a user together with every book they own. Both deletes run in
// one transaction; any failure rolls the whole removal back.
func (r *UserRepository) Delete(userID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM books WHERE owner_id = ?`, userID); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`DELETE FROM users WHERE id = ?`, userID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
