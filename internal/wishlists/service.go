package wishlists

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
)

// Service exposes business rules for wishlist management.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto WishlistDTO) (WishlistDTO, error)
	Update(ctx context.Context, userID uuid.UUID, dto WishlistDTO) (WishlistDTO, error)
	Get(ctx context.Context, id int64) (WishlistDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]WishlistDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	Save(ctx context.Context, record *models.Wishlist) error
	FindByID(ctx context.Context, id int64) (*models.Wishlist, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Wishlist, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository
}

// NewService builds a wishlist service with the required dependencies.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	return &service{repo: repo}, nil
}

// Create persists a brand new wishlist owned by the acting user.
func (s *service) Create(ctx context.Context, userID uuid.UUID, dto WishlistDTO) (WishlistDTO, error) {
	if userID == uuid.Nil {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	record := &models.Wishlist{
		Name:   dto.Name,
		Note:   dto.Note,
		UserID: userID,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wishlist")
	}
	return FromModel(record), nil
}

// Update overwrites the wishlist identified by dto.ID, creating the row when
// it does not exist yet.
func (s *service) Update(ctx context.Context, userID uuid.UUID, dto WishlistDTO) (WishlistDTO, error) {
	if userID == uuid.Nil {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	if dto.ID == nil || *dto.ID <= 0 {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "wishlist id is required")
	}

	record := &models.Wishlist{
		ID:     *dto.ID,
		Name:   dto.Name,
		Note:   dto.Note,
		UserID: userID,
	}
	if existing, err := s.repo.FindByID(ctx, *dto.ID); err == nil {
		record.UserID = existing.UserID
		record.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wishlist")
	}
	return FromModel(record), nil
}

// Get returns a single wishlist or a typed not-found error.
func (s *service) Get(ctx context.Context, id int64) (WishlistDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wishlist not found")
		}
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return FromModel(record), nil
}

// ListForUser returns every wishlist owned by the acting user.
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]WishlistDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	records, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlists")
	}
	return FromModels(records), nil
}

// Delete removes the wishlist regardless of prior state.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wishlist")
	}
	return nil
}
