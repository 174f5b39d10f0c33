package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sellegate-backend/internal/client"
	"sellegate-backend/internal/config"
	"sellegate-backend/internal/repository"
	"sellegate-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	profileRepo := repository.NewEvaluatorProfileRepository(db)
	itemRepo := repository.NewItemRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authCfg := config.Auth{BcryptCost: bcrypt.MinCost, TokenBytes: 32}

	authService := service.NewAuthService(db, authCfg, userRepo, tokenRepo, profileRepo)
	itemService := service.NewItemService(db, itemRepo, paymentRepo)
	evaluationService := service.NewEvaluationService(db, evaluationRepo, itemRepo)
	evaluatorService := service.NewEvaluatorService(userRepo, profileRepo)
	cartService := service.NewCartService(cartRepo, itemRepo)
	ratingService := service.NewRatingService(db, ratingRepo, userRepo)

	return NewServer(authService, itemService, evaluationService, evaluatorService, cartService, ratingService)
}

func doJSON(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestServer_RegisterLoginLogout(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/auth/register/",
		"", `{"username":"seller","email":"seller@example.com","password":"SellerPass123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.UserID)
	assert.NotEmpty(t, registered.Token)

	rec = doJSON(t, srv, http.MethodPost, "/auth/login/",
		"", `{"email":"seller@example.com","password":"SellerPass123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.Token, loggedIn.Token, "login reuses the existing token")

	rec = doJSON(t, srv, http.MethodPost, "/auth/logout/", loggedIn.Token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// revoked token no longer authenticates
	rec = doJSON(t, srv, http.MethodGet, "/auth/me/", loggedIn.Token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Login_BadCredentials(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/auth/login/",
		"", `{"email":"ghost@example.com","password":"whatever123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ErrorEnvelopeShape(t *testing.T) {
	srv := newTestServer(t)

	// empty catalog renders the discriminated error envelope
	rec := doJSON(t, srv, http.MethodGet, "/items/", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope struct {
		Status string `json:"status"`
		Error  struct {
			Message string              `json:"message"`
			Code    int                 `json:"code"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "No items found", envelope.Error.Message)
	assert.Equal(t, http.StatusNotFound, envelope.Error.Code)
	assert.NotNil(t, envelope.Error.Details)
}

func TestServer_Register_ValidationDetails(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/auth/register/",
		"", `{"username":"ab","email":"not-an-email","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Status string `json:"status"`
		Error  struct {
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Contains(t, envelope.Error.Details, "username")
	assert.Contains(t, envelope.Error.Details, "email")
	assert.Contains(t, envelope.Error.Details, "password")
}

func TestServer_MissingToken(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/cart/", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/cart/", "bogus-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RatingsOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/auth/register/",
		"", `{"username":"seller","email":"seller@example.com","password":"SellerPass123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var seller struct {
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &seller))

	rec = doJSON(t, srv, http.MethodPost, "/auth/register/",
		"", `{"username":"buyer","email":"buyer@example.com","password":"BuyerPass123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var buyer struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buyer))

	// rating endpoints require a token
	rec = doJSON(t, srv, http.MethodPost, "/rating_management/ratings/seller/",
		"", `{"seller_id":"`+seller.UserID+`","rating":5}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/rating_management/ratings/seller/", buyer.Token,
		`{"seller_id":"`+seller.UserID+`","rating":5,"comment":"Great packaging."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// out-of-range rating surfaces field details under its wire name
	rec = doJSON(t, srv, http.MethodPost, "/rating_management/ratings/seller/", buyer.Token,
		`{"seller_id":"`+seller.UserID+`","rating":11}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Error.Details, "rating")

	rec = doJSON(t, srv, http.MethodGet, "/rating_management/ratings/seller/"+seller.UserID+"/", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ratings []struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ratings))
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Rating)
}

func TestServer_ItemCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/auth/register/",
		"", `{"username":"seller","email":"seller@example.com","password":"SellerPass123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	rec = doJSON(t, srv, http.MethodPost, "/items/post-item/", registered.Token,
		`{"title":"Lamp","description":"A lamp","price":"49.99","delegation_state":"Independent","is_visible":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Item struct {
			ID string `json:"id"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Item.ID)

	// unknown fields in a PATCH are rejected
	rec = doJSON(t, srv, http.MethodPatch, "/items/update-item/"+created.Item.ID+"/", registered.Token,
		`{"seller_id":"someone-else"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPatch, "/items/update-item/"+created.Item.ID+"/", registered.Token,
		`{"title":"Brass Lamp"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodDelete, "/items/delete-item/"+created.Item.ID+"/", registered.Token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/items/"+created.Item.ID+"/", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
