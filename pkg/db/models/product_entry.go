package models

import (
	"github.com/shopspring/decimal"
)

// ProductEntry is a priced product reference that may hang off up to two
// wishlists at once, mirroring the product_ids table.
type ProductEntry struct {
	ID            int64               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID     *int64              `gorm:"column:product_id" json:"product_id,omitempty"`
	Price         decimal.NullDecimal `gorm:"column:price;type:decimal(21,2)" json:"price,omitempty"`
	PriceTwo      decimal.NullDecimal `gorm:"column:price_two;type:decimal(21,2)" json:"price_two,omitempty"`
	ProductIDTwo  decimal.Decimal     `gorm:"column:product_id_two;type:decimal(21,2);not null" json:"product_id_two"`
	WishListID    *int64              `gorm:"column:wish_list_id;index:product_ids_wish_list_id_idx" json:"wish_list_id,omitempty"`
	WishListTwoID *int64              `gorm:"column:wish_list_two_id;index:product_ids_wish_list_two_id_idx" json:"wish_list_two_id,omitempty"`
}

// TableName keeps the table name from the original schema migration.
func (ProductEntry) TableName() string {
	return "product_ids"
}
