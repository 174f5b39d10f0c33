package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a completed single-item purchase. TotalPrice is frozen at
// the item's price when the buy happens, so later evaluation activity on
// other listings can never rewrite history.
type Payment struct {
	ID         string          `gorm:"primaryKey;size:36;not null"`
	ItemID     string          `gorm:"size:36;index;not null"`
	BuyerID    string          `gorm:"size:36;index;not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
}
