package model

import "time"

// EvaluatorRating scores the quality of an evaluator's appraisals, left by
// any authenticated user. SellerRating does the same for a seller's conduct.
type EvaluatorRating struct {
	ID          string `gorm:"primaryKey;size:36;not null"`
	EvaluatorID string `gorm:"size:36;index;not null"`
	RaterID     string `gorm:"size:36;index;not null"`
	Rating      int    `gorm:"not null"`
	Comment     string `gorm:"type:text"`
	CreatedAt   time.Time
}

type SellerRating struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	SellerID  string `gorm:"size:36;index;not null"`
	RaterID   string `gorm:"size:36;index;not null"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}
