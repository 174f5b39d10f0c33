package service

import (
	"context"
	"errors"
	"fmt"

	"sellegate-backend/internal/apperr"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/model"
	"sellegate-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemService interface {
	ListAll(ctx context.Context) ([]*model.Item, error)
	Explore(ctx context.Context, userID string) ([]*model.Item, error)
	Get(ctx context.Context, itemID string) (*model.Item, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*model.Item, error)
	ListSoldBySeller(ctx context.Context, sellerID string) ([]*model.Item, error)
	Create(ctx context.Context, sellerID string, req *dto.PostItemRequest) (*model.Item, error)
	Update(ctx context.Context, userID, itemID string, req *dto.UpdateItemRequest) (*model.Item, error)
	Delete(ctx context.Context, userID, itemID string) error
	Buy(ctx context.Context, buyerID, itemID string) (*model.Payment, error)
	ListPayments(ctx context.Context, buyerID string) ([]*model.Payment, error)
}

type itemServiceImpl struct {
	db          *gorm.DB
	itemRepo    repository.ItemRepository
	paymentRepo repository.PaymentRepository
}

func NewItemService(
	db *gorm.DB,
	itemRepo repository.ItemRepository,
	paymentRepo repository.PaymentRepository,
) ItemService {
	return &itemServiceImpl{
		db:          db,
		itemRepo:    itemRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *itemServiceImpl) ListAll(ctx context.Context) ([]*model.Item, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("No items found")
	}
	return items, nil
}

// Explore lists unsold items the caller does not own.
func (s *itemServiceImpl) Explore(ctx context.Context, userID string) ([]*model.Item, error) {
	items, err := s.itemRepo.FindExplorable(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list explorable items: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("No items available to explore")
	}
	return items, nil
}

func (s *itemServiceImpl) Get(ctx context.Context, itemID string) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Item with ID %s not found", itemID))
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (s *itemServiceImpl) ListBySeller(ctx context.Context, sellerID string) ([]*model.Item, error) {
	items, err := s.itemRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller items: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("No items found for the current user.").
			WithDetails("seller", "This user has no items.")
	}
	return items, nil
}

func (s *itemServiceImpl) ListSoldBySeller(ctx context.Context, sellerID string) ([]*model.Item, error) {
	items, err := s.itemRepo.FindSoldBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list sold items: %w", err)
	}
	return items, nil
}

func (s *itemServiceImpl) Create(ctx context.Context, sellerID string, req *dto.PostItemRequest) (*model.Item, error) {
	state := model.DelegationState(req.DelegationState)
	if !model.ValidDelegationState(state) {
		return nil, apperr.Validation("Validation failed").
			WithDetails("delegation_state", fmt.Sprintf("%q is not a valid delegation state.", req.DelegationState))
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		return nil, apperr.Validation("Validation failed").
			WithDetails("price", "Price must be greater than zero.")
	}

	item := &model.Item{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		ThumbnailURL:    req.ThumbnailURL,
		SellerID:        sellerID,
		DelegationState: state,
		IsVisible:       *req.IsVisible,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("store item: %w", err)
	}

	return item, nil
}

func (s *itemServiceImpl) Update(ctx context.Context, userID, itemID string, req *dto.UpdateItemRequest) (*model.Item, error) {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.SellerID != userID {
		return nil, apperr.Forbidden("Unauthorized to update this item")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() || req.Price.IsZero() {
			return nil, apperr.Validation("Validation failed").
				WithDetails("price", "Price must be greater than zero.")
		}
		fields["price"] = *req.Price
	}
	if req.ThumbnailURL != nil {
		fields["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.DelegationState != nil {
		state := model.DelegationState(*req.DelegationState)
		if !model.ValidDelegationState(state) {
			return nil, apperr.Validation("Validation failed").
				WithDetails("delegation_state", fmt.Sprintf("%q is not a valid delegation state.", *req.DelegationState))
		}
		fields["delegation_state"] = state
	}
	if req.IsVisible != nil {
		fields["is_visible"] = *req.IsVisible
	}

	if len(fields) == 0 {
		return nil, apperr.Validation("No data provided to update")
	}

	if err := s.itemRepo.UpdateFields(ctx, itemID, fields); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	return s.Get(ctx, itemID)
}

func (s *itemServiceImpl) Delete(ctx context.Context, userID, itemID string) error {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return err
	}

	if item.SellerID != userID {
		return apperr.Forbidden("You do not have permission to delete this item.").
			WithDetails("user", "You are not the owner of this item.")
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	return nil
}

// Buy performs the direct single-item purchase. The sold flag flips via a
// conditional update inside the same transaction that writes the Payment
// row, so at most one buyer can ever win an item.
func (s *itemServiceImpl) Buy(ctx context.Context, buyerID, itemID string) (*model.Payment, error) {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.IsSold {
		return nil, apperr.Validation("Item is already sold.")
	}
	if !item.IsVisible {
		return nil, apperr.Validation("Item is not visible.")
	}
	if item.SellerID == buyerID {
		return nil, apperr.Validation("You cannot buy your own item.")
	}
	if !item.Purchasable() {
		return nil, apperr.Validation("Item cannot be purchased until it has an approved or independent price.")
	}

	payment := &model.Payment{
		ID:         uuid.NewString(),
		ItemID:     item.ID,
		BuyerID:    buyerID,
		TotalPrice: item.Price,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.itemRepo.MarkSold(ctx, tx, item.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Conflict("Item is already sold.")
			}
			return fmt.Errorf("mark item sold: %w", err)
		}

		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *itemServiceImpl) ListPayments(ctx context.Context, buyerID string) ([]*model.Payment, error) {
	payments, err := s.paymentRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
