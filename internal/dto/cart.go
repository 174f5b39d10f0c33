package dto

import "github.com/shopspring/decimal"

type AddToCartRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int32  `json:"quantity" validate:"required,min=1"`
}

// RemoveFromCartRequest drops the whole line when Quantity is omitted.
type RemoveFromCartRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity *int32 `json:"quantity" validate:"omitempty,min=1"`
}

type CartLineResponse struct {
	ItemID    string          `json:"item_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	ID    string              `json:"id"`
	Lines []*CartLineResponse `json:"items"`
	Total decimal.Decimal     `json:"total"`
}
