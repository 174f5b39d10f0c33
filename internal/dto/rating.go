package dto

import (
	"time"

	"sellegate-backend/internal/model"
)

type RateEvaluatorRequest struct {
	EvaluatorID string `json:"evaluator_id" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

type RateSellerRequest struct {
	SellerID string `json:"seller_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

type EvaluatorRatingResponse struct {
	ID          string    `json:"id"`
	EvaluatorID string    `json:"evaluator_id"`
	RaterID     string    `json:"user_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEvaluatorRatingResponse(rating *model.EvaluatorRating) *EvaluatorRatingResponse {
	return &EvaluatorRatingResponse{
		ID:          rating.ID,
		EvaluatorID: rating.EvaluatorID,
		RaterID:     rating.RaterID,
		Rating:      rating.Rating,
		Comment:     rating.Comment,
		CreatedAt:   rating.CreatedAt,
	}
}

func NewEvaluatorRatingResponses(ratings []*model.EvaluatorRating) []*EvaluatorRatingResponse {
	responses := make([]*EvaluatorRatingResponse, len(ratings))
	for i, rating := range ratings {
		responses[i] = NewEvaluatorRatingResponse(rating)
	}
	return responses
}

type SellerRatingResponse struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	RaterID   string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSellerRatingResponse(rating *model.SellerRating) *SellerRatingResponse {
	return &SellerRatingResponse{
		ID:        rating.ID,
		SellerID:  rating.SellerID,
		RaterID:   rating.RaterID,
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
}

func NewSellerRatingResponses(ratings []*model.SellerRating) []*SellerRatingResponse {
	responses := make([]*SellerRatingResponse, len(ratings))
	for i, rating := range ratings {
		responses[i] = NewSellerRatingResponse(rating)
	}
	return responses
}
