package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"sellegate-backend/internal/apperr"
	"sellegate-backend/internal/config"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/model"
	"sellegate-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	Authenticate(ctx context.Context, tokenKey string) (*model.User, error)
}

type authServiceImpl struct {
	db          *gorm.DB
	bcryptCost  int
	tokenBytes  int
	userRepo    repository.UserRepository
	tokenRepo   repository.TokenRepository
	profileRepo repository.EvaluatorProfileRepository
}

func NewAuthService(
	db *gorm.DB,
	cfg config.Auth,
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	profileRepo repository.EvaluatorProfileRepository,
) AuthService {
	return &authServiceImpl{
		db:          db,
		bcryptCost:  cfg.BcryptCost,
		tokenBytes:  cfg.TokenBytes,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
	}
}

// Register creates the user, its evaluator profile and its token as one
// transaction, so a registered user always has exactly one of each.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username uniqueness: %w", err)
	}
	if taken {
		return nil, apperr.Validation("Validation failed").
			WithDetails("username", "A user with that username already exists.")
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return nil, apperr.Validation("Validation failed").
			WithDetails("email", "A user with that email already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	key, err := s.newTokenKey()
	if err != nil {
		return nil, err
	}
	token := &model.AuthToken{
		Key:    key,
		UserID: user.ID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("store user: %w", err)
		}

		profile := &model.EvaluatorProfile{UserID: user.ID}
		if err := s.profileRepo.Create(ctx, tx, profile); err != nil {
			return fmt.Errorf("store evaluator profile: %w", err)
		}

		if err := s.tokenRepo.Create(ctx, tx, token); err != nil {
			return fmt.Errorf("store auth token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return authResponse(user, token), nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.tokenRepo.FindByUser(ctx, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var key string
		if key, err = s.newTokenKey(); err == nil {
			token = &model.AuthToken{
				Key:    key,
				UserID: user.ID,
			}
			err = s.tokenRepo.Create(ctx, s.db, token)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("issue auth token: %w", err)
	}

	return authResponse(user, token), nil
}

func (s *authServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke auth token: %w", err)
	}
	return nil
}

// Authenticate resolves an opaque bearer token to its user.
func (s *authServiceImpl) Authenticate(ctx context.Context, tokenKey string) (*model.User, error) {
	token, err := s.tokenRepo.FindByKey(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid token")
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("find token user: %w", err)
	}

	return user, nil
}

// newTokenKey mints an opaque credential of the configured random length,
// hex only, so the key survives any header or log encoding untouched.
func (s *authServiceImpl) newTokenKey() (string, error) {
	buf := make([]byte, s.tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read token randomness: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func authResponse(user *model.User, token *model.AuthToken) *dto.AuthResponse {
	return &dto.AuthResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsEvaluator: user.IsEvaluator,
		Token:       token.Key,
	}
}
