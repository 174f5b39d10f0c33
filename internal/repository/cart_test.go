package repository

import (
	"context"
	"errors"
	"testing"

	"sellegate-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCartRepository_UpsertLine_Accumulates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreate(context.Background(), uuid.NewString())
	require.NoError(t, err)

	itemID := uuid.NewString()
	require.NoError(t, repo.UpsertLine(context.Background(), &model.CartItem{
		ID: uuid.NewString(), CartID: cart.ID, ItemID: itemID, Quantity: 2,
	}))
	require.NoError(t, repo.UpsertLine(context.Background(), &model.CartItem{
		ID: uuid.NewString(), CartID: cart.ID, ItemID: itemID, Quantity: 3,
	}))

	line, err := repo.FindLine(context.Background(), cart.ID, itemID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, line.Quantity)

	lines, err := repo.FindLines(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartRepository_DecrementLine_Guard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreate(context.Background(), uuid.NewString())
	require.NoError(t, err)

	line := &model.CartItem{ID: uuid.NewString(), CartID: cart.ID, ItemID: uuid.NewString(), Quantity: 5}
	require.NoError(t, repo.UpsertLine(context.Background(), line))

	require.NoError(t, repo.DecrementLine(context.Background(), line.ID, 2))

	after, err := repo.FindLine(context.Background(), cart.ID, line.ItemID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, after.Quantity)

	// decrementing by the full remainder must be a delete, not an update
	err = repo.DecrementLine(context.Background(), line.ID, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCartRepository_GetOrCreate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	userID := uuid.NewString()

	first, err := repo.GetOrCreate(context.Background(), userID)
	require.NoError(t, err)

	second, err := repo.GetOrCreate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
