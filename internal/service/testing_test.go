package service

import (
	"context"
	"testing"

	"sellegate-backend/internal/client"
	"sellegate-backend/internal/config"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/model"
	"sellegate-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestContext bundles an in-memory database with every service under test.
type TestContext struct {
	DB          *gorm.DB
	Auth        AuthService
	Items       ItemService
	Evaluations EvaluationService
	Evaluators  EvaluatorService
	Carts       CartService
	Ratings     RatingService
}

func SetupTestServices(t *testing.T) *TestContext {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open sqlite in-memory database")
	require.NoError(t, client.Migrate(db), "Failed to migrate schema")

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	profileRepo := repository.NewEvaluatorProfileRepository(db)
	itemRepo := repository.NewItemRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authCfg := config.Auth{BcryptCost: bcrypt.MinCost, TokenBytes: 32}

	return &TestContext{
		DB:          db,
		Auth:        NewAuthService(db, authCfg, userRepo, tokenRepo, profileRepo),
		Items:       NewItemService(db, itemRepo, paymentRepo),
		Evaluations: NewEvaluationService(db, evaluationRepo, itemRepo),
		Evaluators:  NewEvaluatorService(userRepo, profileRepo),
		Carts:       NewCartService(cartRepo, itemRepo),
		Ratings:     NewRatingService(db, ratingRepo, userRepo),
	}
}

// CreateTestUser registers a user through the real registration flow.
func CreateTestUser(t *testing.T, tc *TestContext, username string, isEvaluator bool) *model.User {
	t.Helper()

	resp, err := tc.Auth.Register(context.Background(), &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "SuperSecret123",
	})
	require.NoError(t, err, "Failed to register test user")

	if isEvaluator {
		require.NoError(t, tc.DB.Model(&model.User{}).
			Where("id = ?", resp.UserID).
			Update("is_evaluator", true).Error)
	}

	var user model.User
	require.NoError(t, tc.DB.First(&user, "id = ?", resp.UserID).Error)
	return &user
}

// CreateTestItem inserts an item row directly, visible by default.
func CreateTestItem(t *testing.T, tc *TestContext, sellerID string, price string, state model.DelegationState) *model.Item {
	t.Helper()

	item := &model.Item{
		ID:              uuid.NewString(),
		Title:           "Test Item",
		Description:     "Test item for evaluation",
		Price:           decimal.RequireFromString(price),
		SellerID:        sellerID,
		DelegationState: state,
		IsVisible:       true,
	}
	require.NoError(t, tc.DB.Create(item).Error)
	return item
}
