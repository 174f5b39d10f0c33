package service

import (
	"context"
	"errors"
	"fmt"

	"sellegate-backend/internal/apperr"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/model"
	"sellegate-backend/internal/repository"

	"gorm.io/gorm"
)

type EvaluatorService interface {
	GetProfile(ctx context.Context, userID string) (*dto.EvaluatorProfileResponse, error)
	UpdateBio(ctx context.Context, user *model.User, bio string) (*dto.EvaluatorProfileResponse, error)
}

type evaluatorServiceImpl struct {
	userRepo    repository.UserRepository
	profileRepo repository.EvaluatorProfileRepository
}

func NewEvaluatorService(
	userRepo repository.UserRepository,
	profileRepo repository.EvaluatorProfileRepository,
) EvaluatorService {
	return &evaluatorServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *evaluatorServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.EvaluatorProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Evaluator not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.IsEvaluator {
		return nil, apperr.NotFound("Evaluator not found")
	}

	profile, err := s.profileRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find evaluator profile: %w", err)
	}

	return &dto.EvaluatorProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Bio:      profile.Bio,
	}, nil
}

func (s *evaluatorServiceImpl) UpdateBio(ctx context.Context, user *model.User, bio string) (*dto.EvaluatorProfileResponse, error) {
	if !user.IsEvaluator {
		return nil, apperr.Forbidden("Only evaluators can update an evaluator profile.")
	}

	if err := s.profileRepo.UpdateBio(ctx, user.ID, bio); err != nil {
		return nil, fmt.Errorf("update evaluator bio: %w", err)
	}

	return s.GetProfile(ctx, user.ID)
}
