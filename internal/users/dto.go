package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
)

// UserDTO is the public projection of an account.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Login       string     `json:"login"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateUserDTO carries the fields needed to persist a new account.
type CreateUserDTO struct {
	Login        string
	PasswordHash string
}

// ToModel maps the DTO onto a fresh user model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Login:        d.Login,
		PasswordHash: d.PasswordHash,
	}
}

// FromModel converts the persistence model into the public DTO.
func FromModel(user *models.User) UserDTO {
	if user == nil {
		return UserDTO{}
	}
	return UserDTO{
		ID:          user.ID,
		Login:       user.Login,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
