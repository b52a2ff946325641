package handlers

import (
	"errors"
	"net/http"

	request "descomplaca/internal/adapter/http/dto/request"
	response "descomplaca/internal/adapter/http/dto/response"
	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase"
	"descomplaca/internal/usecase/interfaces"
	"descomplaca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for service orders.

type OrderHandler struct {
	usecase usecase.IOrderLifecycleUseCase
}

func NewOrderHandler(uc usecase.IOrderLifecycleUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		VehiclePlate:   payload.VehiclePlate,
		VehicleRenavam: payload.VehicleRenavam,
		ServiceType:    payload.ServiceType,
		Description:    payload.Description,
		City:           payload.City,
		State:          payload.State,
		OwnerID:        payload.OwnerID,
		OwnerEmail:     payload.OwnerEmail,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOpenOrders is the dispatcher lead list: OPEN orders only, with
// optional city/state query filters.
func (h *OrderHandler) ListOpenOrders(c *gin.Context) {
	orders, err := h.usecase.ListOpenOrders(c.Request.Context(), interfaces.OrderFilter{
		City:  c.Query("city"),
		State: c.Query("state"),
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) AdvanceExecution(c *gin.Context) {
	var payload request.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AdvanceExecution(c.Request.Context(), c.Param("order_id"), entities.OrderStatus(payload.Status))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.usecase.CancelOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed for current order status", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoAcceptedProposal):
		return pkg.NewDomainErrorSimple("NO_ACCEPTED_PROPOSAL", "Order has no accepted proposal", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
