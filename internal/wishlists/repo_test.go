package wishlists

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/pkg/db/models"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS wishlists (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT,
  note TEXT,
  user_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func strPtr(v string) *string { return &v }

func TestRepositorySaveAssignsID(t *testing.T) {
	repo := NewRepository(setupWishlistTestDB(t))
	ctx := context.Background()

	record := &models.Wishlist{Name: strPtr("groceries"), UserID: uuid.New()}
	require.NoError(t, repo.Save(ctx, record))
	assert.Positive(t, record.ID)

	loaded, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Name)
	assert.Equal(t, "groceries", *loaded.Name)
}

func TestRepositorySaveOverwritesExisting(t *testing.T) {
	repo := NewRepository(setupWishlistTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	record := &models.Wishlist{Name: strPtr("before"), Note: strPtr("keep"), UserID: userID}
	require.NoError(t, repo.Save(ctx, record))

	record.Name = strPtr("after")
	record.Note = nil
	require.NoError(t, repo.Save(ctx, record))

	loaded, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Name)
	assert.Equal(t, "after", *loaded.Name)
	assert.Nil(t, loaded.Note)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	repo := NewRepository(setupWishlistTestDB(t))

	_, err := repo.FindByID(context.Background(), 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositoryFindByUserScopesRows(t *testing.T) {
	repo := NewRepository(setupWishlistTestDB(t))
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	require.NoError(t, repo.Save(ctx, &models.Wishlist{Name: strPtr("mine-1"), UserID: owner}))
	require.NoError(t, repo.Save(ctx, &models.Wishlist{Name: strPtr("mine-2"), UserID: owner}))
	require.NoError(t, repo.Save(ctx, &models.Wishlist{Name: strPtr("theirs"), UserID: other}))

	records, err := repo.FindByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "mine-2", *records[0].Name)
	assert.Equal(t, "mine-1", *records[1].Name)
}

func TestRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := NewRepository(setupWishlistTestDB(t))
	ctx := context.Background()

	record := &models.Wishlist{Name: strPtr("gone"), UserID: uuid.New()}
	require.NoError(t, repo.Save(ctx, record))

	require.NoError(t, repo.Delete(ctx, record.ID))
	_, err := repo.FindByID(ctx, record.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.Delete(ctx, record.ID))
	require.NoError(t, repo.Delete(ctx, 123456))
}
