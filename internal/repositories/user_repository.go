package repositories

import "tokobaju/internal/models"

// UserRepository defines the interface for user data access.
// GetByEmail is the only path that ever returns the password hash.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	DeleteAll() error
}
