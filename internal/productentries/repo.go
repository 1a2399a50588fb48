package productentries

import (
	"context"

	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
)

// Repository encapsulates product entry persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a product entry repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save persists the record, inserting when the primary key is zero and
// overwriting the full row otherwise.
func (r *Repository) Save(ctx context.Context, record *models.ProductEntry) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByID loads a single product entry.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.ProductEntry, error) {
	var record models.ProductEntry
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindAll returns every product entry ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]models.ProductEntry, error) {
	var records []models.ProductEntry
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByWishlist returns the entries attached to a wishlist through either
// foreign key slot.
func (r *Repository) FindByWishlist(ctx context.Context, wishlistID int64) ([]models.ProductEntry, error) {
	var records []models.ProductEntry
	if err := r.db.WithContext(ctx).
		Where("wish_list_id = ? OR wish_list_two_id = ?", wishlistID, wishlistID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the product entry if it exists.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.ProductEntry{}, "id = ?", id).Error
}
