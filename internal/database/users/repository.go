// Package users provides database operations for the credential table.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.FindByCredentials("alice", "secret")
package users

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a credential pair as given.
func (r *Repository) CreateUser(username, password string) (*entities.User, error) {
	user := &entities.User{
		Username: username,
		Password: password,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByCredentials returns the first user, by id, whose username and
// password both equal the arguments exactly. It returns
// gorm.ErrRecordNotFound when there is none.
func (r *Repository) FindByCredentials(username, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ? AND password = ?", username, password).
		Order("user_id ASC").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of stored users.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}
