package handler

import (
	"net/http"

	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/middleware"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartService.Add(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartService.Remove(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	cart, err := h.cartService.Get(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}
