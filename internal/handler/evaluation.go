package handler

import (
	"net/http"

	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/middleware"
	"sellegate-backend/internal/model"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type EvaluationHandler struct {
	evaluationService service.EvaluationService
}

func NewEvaluationHandler(evaluationService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
	}
}

func (h *EvaluationHandler) New(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.NewEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.evaluationService.Submit(ctx, user, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"evaluation": dto.NewEvaluationResponse(request),
	})
}

func (h *EvaluationHandler) MyEvaluations(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	requests, err := h.evaluationService.ListByEvaluator(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluationResponses(requests))
}

func (h *EvaluationHandler) ItemEvaluations(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	state := model.EvaluationState(c.QueryParam("state"))
	requests, err := h.evaluationService.ListForItem(ctx, user, c.Param("id"), state)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluationResponses(requests))
}

func (h *EvaluationHandler) Accept(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	request, err := h.evaluationService.Accept(ctx, user, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "evaluation request accepted successfully.",
		"evaluation": dto.NewEvaluationResponse(request),
	})
}

func (h *EvaluationHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	if err := h.evaluationService.Reject(ctx, user, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "evaluation request rejected successfully.",
	})
}

func (h *EvaluationHandler) ItemsToEvaluate(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	state := model.DelegationState(c.QueryParam("status"))
	items, err := h.evaluationService.ItemsToEvaluate(ctx, user, state)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": dto.NewItemResponses(items),
	})
}
