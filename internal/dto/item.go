package dto

import (
	"time"

	"sellegate-backend/internal/model"

	"github.com/shopspring/decimal"
)

type PostItemRequest struct {
	Title           string          `json:"title" validate:"required,max=255"`
	Description     string          `json:"description" validate:"required"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	ThumbnailURL    string          `json:"thumbnail_url" validate:"omitempty,url"`
	DelegationState string          `json:"delegation_state" validate:"required"`
	IsVisible       *bool           `json:"is_visible" validate:"required"`
}

// UpdateItemRequest carries the partial update; all fields optional, but the
// handler rejects any body key outside this set.
type UpdateItemRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	ThumbnailURL    *string          `json:"thumbnail_url"`
	DelegationState *string          `json:"delegation_state"`
	IsVisible       *bool            `json:"is_visible"`
}

type ItemResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ThumbnailURL    string          `json:"thumbnail_url,omitempty"`
	SellerID        string          `json:"seller_id"`
	EvaluatorID     *string         `json:"evaluator_id,omitempty"`
	DelegationState string          `json:"delegation_state"`
	IsVisible       bool            `json:"is_visible"`
	IsSold          bool            `json:"is_sold"`
	CreatedAt       time.Time       `json:"created_at"`
}

func NewItemResponse(item *model.Item) *ItemResponse {
	return &ItemResponse{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		Price:           item.Price,
		ThumbnailURL:    item.ThumbnailURL,
		SellerID:        item.SellerID,
		EvaluatorID:     item.EvaluatorID,
		DelegationState: string(item.DelegationState),
		IsVisible:       item.IsVisible,
		IsSold:          item.IsSold,
		CreatedAt:       item.CreatedAt,
	}
}

func NewItemResponses(items []*model.Item) []*ItemResponse {
	responses := make([]*ItemResponse, len(items))
	for i, item := range items {
		responses[i] = NewItemResponse(item)
	}
	return responses
}

type PaymentResponse struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	BuyerID    string          `json:"buyer_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewPaymentResponse(payment *model.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:         payment.ID,
		ItemID:     payment.ItemID,
		BuyerID:    payment.BuyerID,
		TotalPrice: payment.TotalPrice,
		CreatedAt:  payment.CreatedAt,
	}
}

func NewPaymentResponses(payments []*model.Payment) []*PaymentResponse {
	responses := make([]*PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = NewPaymentResponse(payment)
	}
	return responses
}
