package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:191;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	IsEvaluator  bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthToken is the opaque bearer credential, one row per user. Login reuses
// the existing row, logout hard-deletes it.
type AuthToken struct {
	Key       string `gorm:"column:token_key;primaryKey;size:64;not null"`
	UserID    string `gorm:"size:36;uniqueIndex;not null"`
	CreatedAt time.Time
}

// EvaluatorProfile is created together with its User row; every user gets
// one, whether or not is_evaluator is set.
type EvaluatorProfile struct {
	UserID    string `gorm:"primaryKey;size:36;not null"`
	Bio       string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
