package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sellegate-backend/internal/apperr"
	"sellegate-backend/internal/dto"
	"sellegate-backend/internal/middleware"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// allowedUpdateFields mirrors the partial-update contract: any other key in
// the PATCH body is rejected outright.
var allowedUpdateFields = map[string]bool{
	"title":            true,
	"description":      true,
	"price":            true,
	"thumbnail_url":    true,
	"delegation_state": true,
	"is_visible":       true,
}

type ItemHandler struct {
	itemService service.ItemService
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

func (h *ItemHandler) GetAll(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.itemService.ListAll(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

func (h *ItemHandler) Explore(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	items, err := h.itemService.Explore(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

func (h *ItemHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.itemService.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

func (h *ItemHandler) MyProducts(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	items, err := h.itemService.ListBySeller(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

func (h *ItemHandler) MySoldItems(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	items, err := h.itemService.ListSoldBySeller(ctx, user.ID)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "No items sold by this user.",
		})
	}

	return c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

func (h *ItemHandler) PostItem(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	var req dto.PostItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.itemService.Create(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Item created successfully.",
		"item":    dto.NewItemResponse(item),
	})
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)
	itemID := c.Param("id")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(body) == 0 {
		return apperr.Validation("No data provided to update")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(raw) == 0 {
		return apperr.Validation("No data provided to update")
	}

	var invalid []string
	for field := range raw {
		if !allowedUpdateFields[field] {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		return apperr.Validation(fmt.Sprintf("Cannot update the following fields: %s", strings.Join(invalid, ", ")))
	}

	var req dto.UpdateItemRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.itemService.Update(ctx, user.ID, itemID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Item updated successfully",
		"item":    dto.NewItemResponse(item),
	})
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)
	itemID := c.Param("id")

	if err := h.itemService.Delete(ctx, user.ID, itemID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Item with ID %s was deleted successfully.", itemID),
	})
}

func (h *ItemHandler) Buy(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	payment, err := h.itemService.Buy(ctx, user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Item bought successfully.",
		"payment": dto.NewPaymentResponse(payment),
	})
}

func (h *ItemHandler) MyPayments(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	payments, err := h.itemService.ListPayments(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewPaymentResponses(payments))
}
