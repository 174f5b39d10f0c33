package service

import (
	"context"
	"testing"

	"sellegate-backend/internal/apperr"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService_RateEvaluator(t *testing.T) {
	tc := SetupTestServices(t)
	evaluator := CreateTestUser(t, tc, "appraiser", true)
	rater := CreateTestUser(t, tc, "customer", false)

	resp, err := tc.Ratings.RateEvaluator(context.Background(), rater, &dto.RateEvaluatorRequest{
		EvaluatorID: evaluator.ID,
		Rating:      4,
		Comment:     "Fair price, quick turnaround.",
	})
	require.NoError(t, err)
	assert.Equal(t, evaluator.ID, resp.EvaluatorID)
	assert.Equal(t, rater.ID, resp.RaterID)
	assert.Equal(t, 4, resp.Rating)

	var count int64
	require.NoError(t, tc.DB.Model(&model.EvaluatorRating{}).
		Where("evaluator_id = ?", evaluator.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRatingService_RateEvaluator_TargetNotEvaluator(t *testing.T) {
	tc := SetupTestServices(t)
	target := CreateTestUser(t, tc, "plainuser", false)
	rater := CreateTestUser(t, tc, "customer", false)

	_, err := tc.Ratings.RateEvaluator(context.Background(), rater, &dto.RateEvaluatorRequest{
		EvaluatorID: target.ID,
		Rating:      3,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRatingService_RateSeller(t *testing.T) {
	tc := SetupTestServices(t)
	seller := CreateTestUser(t, tc, "seller", false)
	rater := CreateTestUser(t, tc, "buyer", false)

	resp, err := tc.Ratings.RateSeller(context.Background(), rater, &dto.RateSellerRequest{
		SellerID: seller.ID,
		Rating:   5,
		Comment:  "Shipped fast.",
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, resp.SellerID)
	assert.Equal(t, rater.ID, resp.RaterID)

	ratings, err := tc.Ratings.SellerRatings(context.Background(), seller.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Rating)
}

func TestRatingService_RateSeller_UnknownTarget(t *testing.T) {
	tc := SetupTestServices(t)
	rater := CreateTestUser(t, tc, "buyer", false)

	_, err := tc.Ratings.RateSeller(context.Background(), rater, &dto.RateSellerRequest{
		SellerID: "missing-user",
		Rating:   2,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRatingService_SelfRatingRejected(t *testing.T) {
	tc := SetupTestServices(t)
	evaluator := CreateTestUser(t, tc, "appraiser", true)

	_, err := tc.Ratings.RateEvaluator(context.Background(), evaluator, &dto.RateEvaluatorRequest{
		EvaluatorID: evaluator.ID,
		Rating:      5,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = tc.Ratings.RateSeller(context.Background(), evaluator, &dto.RateSellerRequest{
		SellerID: evaluator.ID,
		Rating:   5,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRatingService_EvaluatorRatings_ListsAll(t *testing.T) {
	tc := SetupTestServices(t)
	evaluator := CreateTestUser(t, tc, "appraiser", true)
	first := CreateTestUser(t, tc, "buyer1", false)
	second := CreateTestUser(t, tc, "buyer2", false)

	_, err := tc.Ratings.RateEvaluator(context.Background(), first, &dto.RateEvaluatorRequest{
		EvaluatorID: evaluator.ID,
		Rating:      3,
	})
	require.NoError(t, err)

	_, err = tc.Ratings.RateEvaluator(context.Background(), second, &dto.RateEvaluatorRequest{
		EvaluatorID: evaluator.ID,
		Rating:      5,
	})
	require.NoError(t, err)

	ratings, err := tc.Ratings.EvaluatorRatings(context.Background(), evaluator.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
}
