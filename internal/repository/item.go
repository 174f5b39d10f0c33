package repository

import (
	"context"
	"time"

	"sellegate-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindAll(ctx context.Context) ([]*model.Item, error)
	FindExplorable(ctx context.Context, excludeSellerID string) ([]*model.Item, error)
	FindBySeller(ctx context.Context, sellerID string) ([]*model.Item, error)
	FindSoldBySeller(ctx context.Context, sellerID string) ([]*model.Item, error)
	FindByDelegationState(ctx context.Context, state model.DelegationState, excludeSellerID string) ([]*model.Item, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	MarkSold(ctx context.Context, tx *gorm.DB, id string) error
	ApplyEvaluation(ctx context.Context, tx *gorm.DB, id string, price decimal.Decimal, evaluatorID string) error
}

type itemRepoImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepoImpl{
		db: db,
	}
}

func (r *itemRepoImpl) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepoImpl) FindByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemRepoImpl) FindAll(ctx context.Context) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) FindExplorable(ctx context.Context, excludeSellerID string) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Where("seller_id <> ?", excludeSellerID).
		Where("is_sold = ?", false).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) FindBySeller(ctx context.Context, sellerID string) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) FindSoldBySeller(ctx context.Context, sellerID string) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Where("is_sold = ?", true).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) FindByDelegationState(ctx context.Context, state model.DelegationState, excludeSellerID string) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Where("delegation_state = ?", state).
		Where("seller_id <> ?", excludeSellerID).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *itemRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Item{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// MarkSold flips is_sold with a conditional update so two concurrent buyers
// cannot both win: whoever matches the is_sold = false row first gets it,
// the other sees zero affected rows.
func (r *itemRepoImpl) MarkSold(ctx context.Context, tx *gorm.DB, id string) error {
	result := tx.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Where("is_sold = ?", false).
		Updates(map[string]interface{}{
			"is_sold":    true,
			"is_visible": false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *itemRepoImpl) ApplyEvaluation(ctx context.Context, tx *gorm.DB, id string, price decimal.Decimal, evaluatorID string) error {
	result := tx.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"price":            price,
			"delegation_state": model.DelegationApproved,
			"evaluator_id":     evaluatorID,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
