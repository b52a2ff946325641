package handlers

import (
	"errors"
	"net/http"

	request "descomplaca/internal/adapter/http/dto/request"
	response "descomplaca/internal/adapter/http/dto/response"
	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase"
	"descomplaca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)

// ChatHandler handles HTTP requests for the execution-phase chat.

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	message, err := h.usecase.Send(
		c.Request.Context(),
		payload.OrderID,
		payload.SenderID,
		entities.SenderRole(payload.SenderRole),
		payload.Content,
	)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMessage(message))
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	messages, err := h.usecase.History(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(messages))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMessageInput):
		return pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChatNotUnlocked):
		return pkg.NewDomainErrorSimple("CHAT_NOT_UNLOCKED", "Chat unlocks after payment confirmation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
