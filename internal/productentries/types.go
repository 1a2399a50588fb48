package productentries

import (
	"github.com/shopspring/decimal"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
)

// ProductEntryDTO is the wire representation of a product entry. A nil ID
// marks a record that has not been persisted yet.
type ProductEntryDTO struct {
	ID            *int64              `json:"id"`
	ProductID     *int64              `json:"product_id"`
	Price         decimal.NullDecimal `json:"price"`
	PriceTwo      decimal.NullDecimal `json:"price_two"`
	ProductIDTwo  decimal.Decimal     `json:"product_id_two"`
	WishListID    *int64              `json:"wish_list_id"`
	WishListTwoID *int64              `json:"wish_list_two_id"`
}

// ToModel maps the DTO onto the persistence model.
func (d ProductEntryDTO) ToModel() *models.ProductEntry {
	record := &models.ProductEntry{
		ProductID:     d.ProductID,
		Price:         d.Price,
		PriceTwo:      d.PriceTwo,
		ProductIDTwo:  d.ProductIDTwo,
		WishListID:    d.WishListID,
		WishListTwoID: d.WishListTwoID,
	}
	if d.ID != nil {
		record.ID = *d.ID
	}
	return record
}

// FromModel converts the persistence model into the wire DTO.
func FromModel(record *models.ProductEntry) ProductEntryDTO {
	if record == nil {
		return ProductEntryDTO{}
	}
	id := record.ID
	return ProductEntryDTO{
		ID:            &id,
		ProductID:     record.ProductID,
		Price:         record.Price,
		PriceTwo:      record.PriceTwo,
		ProductIDTwo:  record.ProductIDTwo,
		WishListID:    record.WishListID,
		WishListTwoID: record.WishListTwoID,
	}
}

// FromModels converts a slice of persistence models, never returning nil.
func FromModels(records []models.ProductEntry) []ProductEntryDTO {
	dtos := make([]ProductEntryDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, FromModel(&records[i]))
	}
	return dtos
}
