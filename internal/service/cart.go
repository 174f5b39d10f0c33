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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	Add(ctx context.Context, userID string, req *dto.AddToCartRequest) (*dto.CartResponse, error)
	Remove(ctx context.Context, userID string, req *dto.RemoveFromCartRequest) (*dto.CartResponse, error)
	Get(ctx context.Context, userID string) (*dto.CartResponse, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// Add accumulates quantity onto the user's cart line for the item. The same
// delegation gate as direct purchase applies before anything is written.
func (s *cartServiceImpl) Add(ctx context.Context, userID string, req *dto.AddToCartRequest) (*dto.CartResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Item not found.")
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	if item.IsSold {
		return nil, apperr.Validation("Item is already sold.")
	}
	if !item.Purchasable() {
		return nil, apperr.Validation("Item cannot be added to a cart until it has an approved or independent price.")
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	line := &model.CartItem{
		ID:       uuid.NewString(),
		CartID:   cart.ID,
		ItemID:   item.ID,
		Quantity: req.Quantity,
	}
	if err := s.cartRepo.UpsertLine(ctx, line); err != nil {
		return nil, fmt.Errorf("upsert cart line: %w", err)
	}

	return s.buildCart(ctx, cart)
}

// Remove decrements a line, or deletes it when no quantity is given or the
// requested quantity covers what is in the cart. Quantities never go
// negative.
func (s *cartServiceImpl) Remove(ctx context.Context, userID string, req *dto.RemoveFromCartRequest) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	line, err := s.cartRepo.FindLine(ctx, cart.ID, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Item not found in cart.")
		}
		return nil, fmt.Errorf("find cart line: %w", err)
	}

	if req.Quantity == nil || *req.Quantity >= line.Quantity {
		err = s.cartRepo.DeleteLine(ctx, line.ID)
	} else {
		err = s.cartRepo.DecrementLine(ctx, line.ID, *req.Quantity)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}

	return s.buildCart(ctx, cart)
}

func (s *cartServiceImpl) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	return s.buildCart(ctx, cart)
}

// buildCart assembles the response with per-line subtotals derived from the
// items' current prices.
func (s *cartServiceImpl) buildCart(ctx context.Context, cart *model.Cart) (*dto.CartResponse, error) {
	lines, err := s.cartRepo.FindLines(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}

	resp := &dto.CartResponse{
		ID:    cart.ID,
		Lines: make([]*dto.CartLineResponse, 0, len(lines)),
		Total: decimal.Zero,
	}

	for _, line := range lines {
		item, err := s.itemRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("find cart line item: %w", err)
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		resp.Lines = append(resp.Lines, &dto.CartLineResponse{
			ItemID:    item.ID,
			Title:     item.Title,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}

	return resp, nil
}
