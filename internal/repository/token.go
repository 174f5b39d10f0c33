package repository

import (
	"context"

	"sellegate-backend/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, tx *gorm.DB, token *model.AuthToken) error
	FindByKey(ctx context.Context, key string) (*model.AuthToken, error)
	FindByUser(ctx context.Context, userID string) (*model.AuthToken, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type tokenRepoImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepoImpl{
		db: db,
	}
}

func (r *tokenRepoImpl) Create(ctx context.Context, tx *gorm.DB, token *model.AuthToken) error {
	return tx.WithContext(ctx).Create(token).Error
}

func (r *tokenRepoImpl) FindByKey(ctx context.Context, key string) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.WithContext(ctx).
		Where("token_key = ?", key).
		First(&token).Error

	if err != nil {
		return nil, err
	}

	return &token, nil
}

func (r *tokenRepoImpl) FindByUser(ctx context.Context, userID string) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&token).Error

	if err != nil {
		return nil, err
	}

	return &token, nil
}

func (r *tokenRepoImpl) DeleteByUser(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AuthToken{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
