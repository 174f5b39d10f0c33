package dto

import (
	"time"

	"sellegate-backend/internal/model"

	"github.com/shopspring/decimal"
)

type NewEvaluationRequest struct {
	ItemID  string          `json:"item_id" validate:"required"`
	Name    string          `json:"name" validate:"required,max=255"`
	Message string          `json:"message"`
	Price   decimal.Decimal `json:"price" validate:"required"`
}

type EvaluationResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	EvaluatorID string          `json:"evaluator_id"`
	Name        string          `json:"name"`
	Message     string          `json:"message,omitempty"`
	Price       decimal.Decimal `json:"price"`
	State       string          `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewEvaluationResponse(request *model.EvaluationRequest) *EvaluationResponse {
	return &EvaluationResponse{
		ID:          request.ID,
		ItemID:      request.ItemID,
		EvaluatorID: request.EvaluatorID,
		Name:        request.Name,
		Message:     request.Message,
		Price:       request.Price,
		State:       string(request.State),
		CreatedAt:   request.CreatedAt,
	}
}

func NewEvaluationResponses(requests []*model.EvaluationRequest) []*EvaluationResponse {
	responses := make([]*EvaluationResponse, len(requests))
	for i, request := range requests {
		responses[i] = NewEvaluationResponse(request)
	}
	return responses
}

type EvaluatorProfileResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
}

type UpdateProfileRequest struct {
	Bio string `json:"bio" validate:"required"`
}
