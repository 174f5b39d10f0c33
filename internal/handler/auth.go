package handler

import (
	"net/http"

	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/middleware"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authService.Register(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	if err := h.authService.Logout(ctx, user.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully.",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.UserFromContext(c)

	return c.JSON(http.StatusOK, &dto.UserResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsEvaluator: user.IsEvaluator,
	})
}
