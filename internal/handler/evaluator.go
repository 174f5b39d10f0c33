package handler

import (
	"net/http"

	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/middleware"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type EvaluatorHandler struct {
	evaluatorService service.EvaluatorService
}

func NewEvaluatorHandler(evaluatorService service.EvaluatorService) *EvaluatorHandler {
	return &EvaluatorHandler{
		evaluatorService: evaluatorService,
	}
}

func (h *EvaluatorHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.evaluatorService.GetProfile(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *EvaluatorHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.evaluatorService.UpdateBio(ctx, user, req.Bio)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}
