package model

import "time"

type Cart struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	UserID    string `gorm:"size:36;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem accumulates quantity across repeated adds of the same item.
// Subtotals are derived from the live item price, never stored.
type CartItem struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	CartID    string `gorm:"size:36;index:idx_cart_item,unique;not null"`
	ItemID    string `gorm:"size:36;index:idx_cart_item,unique;not null"`
	Quantity  int32  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
