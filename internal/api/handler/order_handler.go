package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/commerce-system/internal/api/middleware"
	"github.com/shopstack/commerce-system/internal/core/ports"
)

// OrderHandler exposes subject-scoped orders. Every route sits behind the
// Auth middleware; the subject always comes from the verified token.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create places an order, embedding a snapshot of the product at purchase
// time fetched synchronously from the catalog service.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      201   {object}  object
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	subject, _ := c.Get(middleware.ContextSubject).(string)
	order, err := h.service.Create(c.Request().Context(), subject, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// List returns the caller's orders, served from the per-subject cache when
// possible.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	subject, _ := c.Get(middleware.ContextSubject).(string)
	orders, err := h.service.List(c.Request().Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Delete removes one of the caller's orders. An attempt on another
// subject's order reads as 404.
//
// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	subject, _ := c.Get(middleware.ContextSubject).(string)
	if err := h.service.Delete(c.Request().Context(), subject, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
