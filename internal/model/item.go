package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DelegationState string

const (
	DelegationPending     DelegationState = "Pending"
	DelegationApproved    DelegationState = "Approved"
	DelegationRejected    DelegationState = "Rejected"
	DelegationIndependent DelegationState = "Independent"
)

// ValidDelegationState reports whether s is one of the four item workflow states.
func ValidDelegationState(s DelegationState) bool {
	switch s {
	case DelegationPending, DelegationApproved, DelegationRejected, DelegationIndependent:
		return true
	}
	return false
}

type Item struct {
	ID              string          `gorm:"primaryKey;size:36;not null"`
	Title           string          `gorm:"size:255;not null"`
	Description     string          `gorm:"type:text;not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ThumbnailURL    string          `gorm:"size:512"`
	SellerID        string          `gorm:"size:36;index;not null"`
	EvaluatorID     *string         `gorm:"size:36;index"`
	DelegationState DelegationState `gorm:"size:16;index;not null"`
	IsVisible       bool            `gorm:"not null"`
	IsSold          bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Purchasable is the delegation gate shared by direct buy and cart add:
// only seller-priced (Independent) or evaluator-priced (Approved) items
// may change hands.
func (i *Item) Purchasable() bool {
	return i.DelegationState == DelegationApproved || i.DelegationState == DelegationIndependent
}
