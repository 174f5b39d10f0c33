package repository

import (
	"context"
	"time"

	"sellegate-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*model.Cart, error)
	UpsertLine(ctx context.Context, line *model.CartItem) error
	FindLine(ctx context.Context, cartID, itemID string) (*model.CartItem, error)
	FindLines(ctx context.Context, cartID string) ([]*model.CartItem, error)
	DeleteLine(ctx context.Context, lineID string) error
	DecrementLine(ctx context.Context, lineID string, quantity int32) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where(model.Cart{UserID: userID}).
		Attrs(model.Cart{ID: uuid.NewString()}).
		FirstOrCreate(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// UpsertLine inserts a cart line or, when the (cart, item) pair already
// exists, accumulates the quantity onto the existing row.
func (r *cartRepoImpl) UpsertLine(ctx context.Context, line *model.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", line.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(line).Error
}

func (r *cartRepoImpl) FindLine(ctx context.Context, cartID, itemID string) (*model.CartItem, error) {
	var line model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Where("item_id = ?", itemID).
		First(&line).Error

	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *cartRepoImpl) FindLines(ctx context.Context, cartID string) ([]*model.CartItem, error) {
	var lines []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&lines).Error

	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *cartRepoImpl) DeleteLine(ctx context.Context, lineID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", lineID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DecrementLine subtracts quantity from a line. The quantity guard keeps a
// concurrent remove from driving the stored quantity to zero or below.
func (r *cartRepoImpl) DecrementLine(ctx context.Context, lineID string, quantity int32) error {
	result := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", lineID).
		Where("quantity > ?", quantity).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", quantity),
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
