package models

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a named list of products owned by a single user.
type Wishlist struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      *string   `gorm:"column:name" json:"name,omitempty"`
	Note      *string   `gorm:"column:note" json:"note,omitempty"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:wishlists_user_id_idx" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
