package repository

import (
	"context"
	"errors"
	"testing"

	"sellegate-backend/internal/client"
	"sellegate-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open sqlite in-memory database")
	require.NoError(t, client.Migrate(db), "Failed to migrate schema")
	return db
}

func createItem(t *testing.T, db *gorm.DB, state model.DelegationState) *model.Item {
	t.Helper()

	item := &model.Item{
		ID:              uuid.NewString(),
		Title:           "Test Item",
		Description:     "desc",
		Price:           decimal.RequireFromString("49.99"),
		SellerID:        uuid.NewString(),
		DelegationState: state,
		IsVisible:       true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestItemRepository_MarkSold_OnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	item := createItem(t, db, model.DelegationIndependent)

	err := repo.MarkSold(context.Background(), db, item.ID)
	require.NoError(t, err)

	// the second conditional update matches no rows
	err = repo.MarkSold(context.Background(), db, item.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var after model.Item
	require.NoError(t, db.First(&after, "id = ?", item.ID).Error)
	assert.True(t, after.IsSold)
	assert.False(t, after.IsVisible)
}

func TestItemRepository_ApplyEvaluation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	item := createItem(t, db, model.DelegationPending)
	evaluatorID := uuid.NewString()

	err := repo.ApplyEvaluation(context.Background(), db, item.ID, decimal.RequireFromString("55.00"), evaluatorID)
	require.NoError(t, err)

	var after model.Item
	require.NoError(t, db.First(&after, "id = ?", item.ID).Error)
	assert.Equal(t, model.DelegationApproved, after.DelegationState)
	assert.True(t, after.Price.Equal(decimal.RequireFromString("55.00")))
	require.NotNil(t, after.EvaluatorID)
	assert.Equal(t, evaluatorID, *after.EvaluatorID)
}

func TestItemRepository_UpdateFields_MissingItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	err := repo.UpdateFields(context.Background(), uuid.NewString(), map[string]interface{}{"title": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
