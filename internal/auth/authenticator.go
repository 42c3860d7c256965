package auth

import (
	"errors"

	"book-catalog/internal/database"
	"book-catalog/internal/database/repositories"
)

// ErrNotAuthenticated is the uniform failure for credential verification.
// Callers must not be able to tell an unknown username from a wrong password.
var ErrNotAuthenticated = errors.New("not authenticated")

// UserFinder is the credential-store lookup the authenticator needs
type UserFinder interface {
	GetByUsername(username string) (*database.User, error)
}

// Authenticator verifies username/password pairs against the credential store
type Authenticator struct {
	users UserFinder
}

func NewAuthenticator(users UserFinder) *Authenticator {
	return &Authenticator{users: users}
}

// Authenticate looks up the user and checks the password. Unknown users and
// password mismatches both return ErrNotAuthenticated.
func (a *Authenticator) Authenticate(username, password string) (*database.User, error) {
	user, err := a.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	if !CheckPassword(password, user.HashedPassword) {
		return nil, ErrNotAuthenticated
	}

	return user, nil
}
