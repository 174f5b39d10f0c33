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

type RatingService interface {
	RateEvaluator(ctx context.Context, rater *model.User, req *dto.RateEvaluatorRequest) (*dto.EvaluatorRatingResponse, error)
	RateSeller(ctx context.Context, rater *model.User, req *dto.RateSellerRequest) (*dto.SellerRatingResponse, error)
	EvaluatorRatings(ctx context.Context, evaluatorID string) ([]*dto.EvaluatorRatingResponse, error)
	SellerRatings(ctx context.Context, sellerID string) ([]*dto.SellerRatingResponse, error)
}

type ratingServiceImpl struct {
	db         *gorm.DB
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
}

func NewRatingService(
	db *gorm.DB,
	ratingRepo repository.RatingRepository,
	userRepo repository.UserRepository,
) RatingService {
	return &ratingServiceImpl{
		db:         db,
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
	}
}

// RateEvaluator records a rating against an evaluator. The target must be a
// user with evaluator status; raters cannot rate themselves.
func (s *ratingServiceImpl) RateEvaluator(ctx context.Context, rater *model.User, req *dto.RateEvaluatorRequest) (*dto.EvaluatorRatingResponse, error) {
	target, err := s.ratedUser(ctx, req.EvaluatorID, rater.ID)
	if err != nil {
		return nil, err
	}
	if !target.IsEvaluator {
		return nil, apperr.NotFound("Evaluator not found")
	}

	rating := &model.EvaluatorRating{
		ID:          uuid.NewString(),
		EvaluatorID: target.ID,
		RaterID:     rater.ID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if err := s.ratingRepo.CreateEvaluatorRating(ctx, s.db, rating); err != nil {
		return nil, fmt.Errorf("store evaluator rating: %w", err)
	}

	return dto.NewEvaluatorRatingResponse(rating), nil
}

func (s *ratingServiceImpl) RateSeller(ctx context.Context, rater *model.User, req *dto.RateSellerRequest) (*dto.SellerRatingResponse, error) {
	target, err := s.ratedUser(ctx, req.SellerID, rater.ID)
	if err != nil {
		return nil, err
	}

	rating := &model.SellerRating{
		ID:       uuid.NewString(),
		SellerID: target.ID,
		RaterID:  rater.ID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.ratingRepo.CreateSellerRating(ctx, s.db, rating); err != nil {
		return nil, fmt.Errorf("store seller rating: %w", err)
	}

	return dto.NewSellerRatingResponse(rating), nil
}

func (s *ratingServiceImpl) EvaluatorRatings(ctx context.Context, evaluatorID string) ([]*dto.EvaluatorRatingResponse, error) {
	ratings, err := s.ratingRepo.FindEvaluatorRatings(ctx, evaluatorID)
	if err != nil {
		return nil, fmt.Errorf("list evaluator ratings: %w", err)
	}
	return dto.NewEvaluatorRatingResponses(ratings), nil
}

func (s *ratingServiceImpl) SellerRatings(ctx context.Context, sellerID string) ([]*dto.SellerRatingResponse, error) {
	ratings, err := s.ratingRepo.FindSellerRatings(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller ratings: %w", err)
	}
	return dto.NewSellerRatingResponses(ratings), nil
}

func (s *ratingServiceImpl) ratedUser(ctx context.Context, targetID, raterID string) (*model.User, error) {
	if targetID == raterID {
		return nil, apperr.Validation("You cannot rate yourself.")
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("User with ID %s not found", targetID))
		}
		return nil, fmt.Errorf("find rated user: %w", err)
	}

	return target, nil
}
