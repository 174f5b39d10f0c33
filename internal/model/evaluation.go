package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EvaluationState string

const (
	EvaluationPending  EvaluationState = "Pending"
	EvaluationApproved EvaluationState = "Approved"
	EvaluationRejected EvaluationState = "Rejected"
)

// EvaluationRequest is an evaluator's price proposal for an item. The item's
// seller resolves it: accept copies the proposed price onto the item and
// approves its delegation, reject leaves the item untouched.
type EvaluationRequest struct {
	ID          string          `gorm:"primaryKey;size:36;not null"`
	ItemID      string          `gorm:"size:36;index;not null"`
	EvaluatorID string          `gorm:"size:36;index;not null"`
	Name        string          `gorm:"size:255;not null"`
	Message     string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	State       EvaluationState `gorm:"size:16;index;not null"`
	CreatedAt   time.Time
}
