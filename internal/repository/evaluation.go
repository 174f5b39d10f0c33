package repository

import (
	"context"

	"sellegate-backend/internal/model"

	"gorm.io/gorm"
)

type EvaluationRepository interface {
	Create(ctx context.Context, request *model.EvaluationRequest) error
	FindByID(ctx context.Context, id string) (*model.EvaluationRequest, error)
	FindByEvaluator(ctx context.Context, evaluatorID string) ([]*model.EvaluationRequest, error)
	FindByItem(ctx context.Context, itemID string, state model.EvaluationState) ([]*model.EvaluationRequest, error)
	HasApprovedForItem(ctx context.Context, tx *gorm.DB, itemID string) (bool, error)
	MarkApproved(ctx context.Context, tx *gorm.DB, id string) error
	MarkRejected(ctx context.Context, id string) error
}

type evaluationRepoImpl struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepoImpl{
		db: db,
	}
}

func (r *evaluationRepoImpl) Create(ctx context.Context, request *model.EvaluationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *evaluationRepoImpl) FindByID(ctx context.Context, id string) (*model.EvaluationRequest, error) {
	var request model.EvaluationRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&request).Error

	if err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *evaluationRepoImpl) FindByEvaluator(ctx context.Context, evaluatorID string) ([]*model.EvaluationRequest, error) {
	var requests []*model.EvaluationRequest
	err := r.db.WithContext(ctx).
		Where("evaluator_id = ?", evaluatorID).
		Order("created_at DESC").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

// FindByItem lists requests for an item, optionally filtered by state
// (empty state means all).
func (r *evaluationRepoImpl) FindByItem(ctx context.Context, itemID string, state model.EvaluationState) ([]*model.EvaluationRequest, error) {
	query := r.db.WithContext(ctx).Where("item_id = ?", itemID)
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var requests []*model.EvaluationRequest
	err := query.Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *evaluationRepoImpl) HasApprovedForItem(ctx context.Context, tx *gorm.DB, itemID string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&model.EvaluationRequest{}).
		Where("item_id = ?", itemID).
		Where("state = ?", model.EvaluationApproved).
		Count(&count).Error

	return count > 0, err
}

// MarkApproved advances a Pending request to Approved. The state guard in
// the WHERE clause makes resolving a request a one-shot operation.
func (r *evaluationRepoImpl) MarkApproved(ctx context.Context, tx *gorm.DB, id string) error {
	result := tx.WithContext(ctx).Model(&model.EvaluationRequest{}).
		Where("id = ?", id).
		Where("state = ?", model.EvaluationPending).
		Update("state", model.EvaluationApproved)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *evaluationRepoImpl) MarkRejected(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.EvaluationRequest{}).
		Where("id = ?", id).
		Where("state = ?", model.EvaluationPending).
		Update("state", model.EvaluationRejected)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
