package wishlists

import "github.com/firstcode/wishlist-backend/pkg/db/models"

// WishlistDTO is the wire representation of a wishlist. A nil ID marks a
// record that has not been persisted yet.
type WishlistDTO struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name" validate:"omitempty,max=255"`
	Note *string `json:"note" validate:"omitempty,max=4000"`
}

// FromModel converts the persistence model into the wire DTO.
func FromModel(record *models.Wishlist) WishlistDTO {
	if record == nil {
		return WishlistDTO{}
	}
	id := record.ID
	return WishlistDTO{
		ID:   &id,
		Name: record.Name,
		Note: record.Note,
	}
}

// FromModels converts a slice of persistence models, never returning nil.
func FromModels(records []models.Wishlist) []WishlistDTO {
	dtos := make([]WishlistDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, FromModel(&records[i]))
	}
	return dtos
}
