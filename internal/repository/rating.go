package repository

import (
	"context"

	"sellegate-backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository interface {
	CreateEvaluatorRating(ctx context.Context, tx *gorm.DB, rating *model.EvaluatorRating) error
	CreateSellerRating(ctx context.Context, tx *gorm.DB, rating *model.SellerRating) error
	FindEvaluatorRatings(ctx context.Context, evaluatorID string) ([]*model.EvaluatorRating, error)
	FindSellerRatings(ctx context.Context, sellerID string) ([]*model.SellerRating, error)
}

type ratingRepoImpl struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepoImpl{
		db: db,
	}
}

func (r *ratingRepoImpl) CreateEvaluatorRating(ctx context.Context, tx *gorm.DB, rating *model.EvaluatorRating) error {
	return tx.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepoImpl) CreateSellerRating(ctx context.Context, tx *gorm.DB, rating *model.SellerRating) error {
	return tx.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepoImpl) FindEvaluatorRatings(ctx context.Context, evaluatorID string) ([]*model.EvaluatorRating, error) {
	var ratings []*model.EvaluatorRating
	err := r.db.WithContext(ctx).
		Where("evaluator_id = ?", evaluatorID).
		Order("created_at DESC").
		Find(&ratings).Error

	if err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *ratingRepoImpl) FindSellerRatings(ctx context.Context, sellerID string) ([]*model.SellerRating, error) {
	var ratings []*model.SellerRating
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&ratings).Error

	if err != nil {
		return nil, err
	}

	return ratings, nil
}
