package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	FindByCredentials(username, password string) (*entities.User, error)
}

// Service checks login pairs against the credential table.
type Service struct {
	users UserRepository
}

// NewService creates a new authentication service.
func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Login returns the first user whose username and password both match
// exactly. A mismatch is a not-found error; there is no lockout or hashing.
func (s *Service) Login(username, password string) (*entities.User, error) {
	const op = "login"

	user, err := s.users.FindByCredentials(username, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(op, "invalid username or password")
		}
		return nil, apperr.StoreAccess(op, "failed to look up user", err)
	}
	return user, nil
}
