package handler

import (
	"net/http"

	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/middleware"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RateEvaluator(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.RateEvaluatorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.ratingService.RateEvaluator(ctx, user, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) RateSeller(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.RateSellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.ratingService.RateSeller(ctx, user, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) EvaluatorRatings(c echo.Context) error {
	ratings, err := h.ratingService.EvaluatorRatings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ratings)
}

func (h *RatingHandler) SellerRatings(c echo.Context) error {
	ratings, err := h.ratingService.SellerRatings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ratings)
}
