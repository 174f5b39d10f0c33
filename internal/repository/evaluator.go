package repository

import (
	"context"
	"time"

	"sellegate-backend/internal/model"

	"gorm.io/gorm"
)

type EvaluatorProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, profile *model.EvaluatorProfile) error
	FindByUser(ctx context.Context, userID string) (*model.EvaluatorProfile, error)
	UpdateBio(ctx context.Context, userID string, bio string) error
}

type evaluatorProfileRepoImpl struct {
	db *gorm.DB
}

func NewEvaluatorProfileRepository(db *gorm.DB) EvaluatorProfileRepository {
	return &evaluatorProfileRepoImpl{
		db: db,
	}
}

func (r *evaluatorProfileRepoImpl) Create(ctx context.Context, tx *gorm.DB, profile *model.EvaluatorProfile) error {
	return tx.WithContext(ctx).Create(profile).Error
}

func (r *evaluatorProfileRepoImpl) FindByUser(ctx context.Context, userID string) (*model.EvaluatorProfile, error) {
	var profile model.EvaluatorProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *evaluatorProfileRepoImpl) UpdateBio(ctx context.Context, userID string, bio string) error {
	result := r.db.WithContext(ctx).Model(&model.EvaluatorProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"bio":        bio,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
