package service

import (
	"context"
	"errors"
	"fmt"

	"sellegate-backend/internal/apperr"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/model"
	"sellegate-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationService interface {
	Submit(ctx context.Context, evaluator *model.User, req *dto.NewEvaluationRequest) (*model.EvaluationRequest, error)
	ListByEvaluator(ctx context.Context, evaluatorID string) ([]*model.EvaluationRequest, error)
	ListForItem(ctx context.Context, user *model.User, itemID string, state model.EvaluationState) ([]*model.EvaluationRequest, error)
	Accept(ctx context.Context, user *model.User, requestID string) (*model.EvaluationRequest, error)
	Reject(ctx context.Context, user *model.User, requestID string) error
	ItemsToEvaluate(ctx context.Context, evaluator *model.User, state model.DelegationState) ([]*model.Item, error)
}

type evaluationServiceImpl struct {
	db             *gorm.DB
	evaluationRepo repository.EvaluationRepository
	itemRepo       repository.ItemRepository
}

func NewEvaluationService(
	db *gorm.DB,
	evaluationRepo repository.EvaluationRepository,
	itemRepo repository.ItemRepository,
) EvaluationService {
	return &evaluationServiceImpl{
		db:             db,
		evaluationRepo: evaluationRepo,
		itemRepo:       itemRepo,
	}
}

// Submit files a Pending price proposal. Only flagged evaluators may file
// one, and never against their own listings.
func (s *evaluationServiceImpl) Submit(ctx context.Context, evaluator *model.User, req *dto.NewEvaluationRequest) (*model.EvaluationRequest, error) {
	if !evaluator.IsEvaluator {
		return nil, apperr.Forbidden("Only evaluators can send evaluation requests.")
	}

	item, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	if item.SellerID == evaluator.ID {
		return nil, apperr.Forbidden("You cannot evaluate your own item.")
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		return nil, apperr.Validation("Validation failed").
			WithDetails("price", "Price must be greater than zero.")
	}

	request := &model.EvaluationRequest{
		ID:          uuid.NewString(),
		ItemID:      item.ID,
		EvaluatorID: evaluator.ID,
		Name:        req.Name,
		Message:     req.Message,
		Price:       req.Price,
		State:       model.EvaluationPending,
	}

	if err := s.evaluationRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("store evaluation request: %w", err)
	}

	return request, nil
}

func (s *evaluationServiceImpl) ListByEvaluator(ctx context.Context, evaluatorID string) ([]*model.EvaluationRequest, error) {
	requests, err := s.evaluationRepo.FindByEvaluator(ctx, evaluatorID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return requests, nil
}

// ListForItem is the seller's view of proposals targeting one of their items.
func (s *evaluationServiceImpl) ListForItem(ctx context.Context, user *model.User, itemID string, state model.EvaluationState) ([]*model.EvaluationRequest, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	if item.SellerID != user.ID {
		return nil, apperr.Forbidden("You are not the seller of this item.")
	}

	requests, err := s.evaluationRepo.FindByItem(ctx, itemID, state)
	if err != nil {
		return nil, fmt.Errorf("list item evaluations: %w", err)
	}
	return requests, nil
}

// Accept resolves a Pending request: it flips to Approved and, in the same
// transaction, the item takes the proposed price, the evaluator assignment
// and the Approved delegation state. An item carries at most one Approved
// request, checked here before the state advances.
func (s *evaluationServiceImpl) Accept(ctx context.Context, user *model.User, requestID string) (*model.EvaluationRequest, error) {
	request, item, err := s.loadForResolution(ctx, user, requestID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		approved, err := s.evaluationRepo.HasApprovedForItem(ctx, tx, item.ID)
		if err != nil {
			return fmt.Errorf("check approved evaluations: %w", err)
		}
		if approved {
			return apperr.Conflict("Item already has an approved evaluation.")
		}

		if err := s.evaluationRepo.MarkApproved(ctx, tx, request.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Conflict("Evaluation request is already resolved.")
			}
			return fmt.Errorf("approve evaluation request: %w", err)
		}

		if err := s.itemRepo.ApplyEvaluation(ctx, tx, item.ID, request.Price, request.EvaluatorID); err != nil {
			return fmt.Errorf("apply evaluation to item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.evaluationRepo.FindByID(ctx, request.ID)
}

// Reject resolves a Pending request against the evaluator. The item is left
// untouched.
func (s *evaluationServiceImpl) Reject(ctx context.Context, user *model.User, requestID string) error {
	request, _, err := s.loadForResolution(ctx, user, requestID)
	if err != nil {
		return err
	}

	if err := s.evaluationRepo.MarkRejected(ctx, request.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Conflict("Evaluation request is already resolved.")
		}
		return fmt.Errorf("reject evaluation request: %w", err)
	}

	return nil
}

func (s *evaluationServiceImpl) ItemsToEvaluate(ctx context.Context, evaluator *model.User, state model.DelegationState) ([]*model.Item, error) {
	if !evaluator.IsEvaluator {
		return nil, apperr.Forbidden("Only evaluators can search items to evaluate.")
	}
	if state == "" {
		state = model.DelegationPending
	}
	if !model.ValidDelegationState(state) {
		return nil, apperr.Validation("Validation failed").
			WithDetails("status", fmt.Sprintf("%q is not a valid delegation state.", string(state)))
	}

	items, err := s.itemRepo.FindByDelegationState(ctx, state, evaluator.ID)
	if err != nil {
		return nil, fmt.Errorf("list items to evaluate: %w", err)
	}
	return items, nil
}

// loadForResolution fetches a request plus its item and checks the caller is
// the item's seller and the request is still Pending.
func (s *evaluationServiceImpl) loadForResolution(ctx context.Context, user *model.User, requestID string) (*model.EvaluationRequest, *model.Item, error) {
	request, err := s.evaluationRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Evaluation request not found")
		}
		return nil, nil, fmt.Errorf("find evaluation request: %w", err)
	}

	item, err := s.itemRepo.FindByID(ctx, request.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Item not found")
		}
		return nil, nil, fmt.Errorf("find item: %w", err)
	}

	if item.SellerID != user.ID {
		return nil, nil, apperr.Forbidden("You are not the seller of this item.")
	}

	if request.State != model.EvaluationPending {
		return nil, nil, apperr.Conflict("Evaluation request is already resolved.")
	}

	return request, item, nil
}
