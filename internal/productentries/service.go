package productentries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
)

// Service exposes business rules for product entry management.
type Service interface {
	Create(ctx context.Context, dto ProductEntryDTO) (ProductEntryDTO, error)
	Update(ctx context.Context, dto ProductEntryDTO) (ProductEntryDTO, error)
	Get(ctx context.Context, id int64) (ProductEntryDTO, error)
	List(ctx context.Context) ([]ProductEntryDTO, error)
	ListByWishlist(ctx context.Context, wishlistID int64) ([]ProductEntryDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	Save(ctx context.Context, record *models.ProductEntry) error
	FindByID(ctx context.Context, id int64) (*models.ProductEntry, error)
	FindAll(ctx context.Context) ([]models.ProductEntry, error)
	FindByWishlist(ctx context.Context, wishlistID int64) ([]models.ProductEntry, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository
}

// NewService builds a product entry service with the required dependencies.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product entry repo is required")
	}
	return &service{repo: repo}, nil
}

// Create persists a brand new product entry.
func (s *service) Create(ctx context.Context, dto ProductEntryDTO) (ProductEntryDTO, error) {
	record := dto.ToModel()
	record.ID = 0
	if err := s.repo.Save(ctx, record); err != nil {
		return ProductEntryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save product entry")
	}
	return FromModel(record), nil
}

// Update overwrites the entry identified by dto.ID, creating the row when it
// does not exist yet.
func (s *service) Update(ctx context.Context, dto ProductEntryDTO) (ProductEntryDTO, error) {
	if dto.ID == nil || *dto.ID <= 0 {
		return ProductEntryDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product entry id is required")
	}
	record := dto.ToModel()
	if err := s.repo.Save(ctx, record); err != nil {
		return ProductEntryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save product entry")
	}
	return FromModel(record), nil
}

// Get returns a single product entry or a typed not-found error.
func (s *service) Get(ctx context.Context, id int64) (ProductEntryDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductEntryDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product entry not found")
		}
		return ProductEntryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product entry")
	}
	return FromModel(record), nil
}

// List returns every product entry.
func (s *service) List(ctx context.Context) ([]ProductEntryDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product entries")
	}
	return FromModels(records), nil
}

// ListByWishlist returns the entries attached to the given wishlist.
func (s *service) ListByWishlist(ctx context.Context, wishlistID int64) ([]ProductEntryDTO, error) {
	if wishlistID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist id is required")
	}
	records, err := s.repo.FindByWishlist(ctx, wishlistID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product entries")
	}
	return FromModels(records), nil
}

// Delete removes the product entry regardless of prior state.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product entry")
	}
	return nil
}
