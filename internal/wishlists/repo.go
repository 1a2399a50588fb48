package wishlists

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save persists the record, inserting when the primary key is zero and
// overwriting the full row otherwise.
func (r *Repository) Save(ctx context.Context, record *models.Wishlist) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByID loads a single wishlist.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Wishlist, error) {
	var record models.Wishlist
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByUser returns the wishlists owned by the given user, newest first.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Wishlist, error) {
	var records []models.Wishlist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the wishlist if it exists. Deleting a missing row is not an
// error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Wishlist{}, "id = ?", id).Error
}
