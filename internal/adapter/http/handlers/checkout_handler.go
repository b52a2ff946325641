package handlers

import (
	"errors"
	"net/http"

	request "descomplaca/internal/adapter/http/dto/request"
	response "descomplaca/internal/adapter/http/dto/response"
	"descomplaca/internal/usecase"
	"descomplaca/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for checkout and the gateway
// confirmation webhook.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	log     *zap.SugaredLogger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, log *zap.SugaredLogger) *CheckoutHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CheckoutHandler{usecase: uc, log: log}
}

// CreateCheckout accepts the proposal and creates the PIX charge in a
// single call; the response carries the gateway redirect URL. It does
// not wait for payment confirmation.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	handle, err := h.usecase.CreateCheckout(c.Request.Context(), proposalID)
	if err != nil {
		h.log.Warnf("[checkout][handler] create failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutHandle(handle))
}

// AsaasWebhook consumes the gateway's server-pushed events. It always
// acknowledges with 200 once the payload parses: the gateway retries on
// non-2xx, and a payment we cannot resolve will not resolve better on
// the retry that follows a 500.
func (h *CheckoutHandler) AsaasWebhook(c *gin.Context) {
	var payload request.AsaasWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.HandleGatewayEvent(c.Request.Context(), payload.Event, payload.Payment.ID); err != nil {
		h.log.Errorf("[checkout][handler] webhook processing failed event=%s payment_id=%s err=%v", payload.Event, payload.Payment.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalInput):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalBlocked):
		return pkg.NewDomainErrorSimple("PROPOSAL_BLOCKED", "Proposal was blocked by moderation", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalWithdrawn):
		return pkg.NewDomainErrorSimple("PROPOSAL_WITHDRAWN", "Proposal was withdrawn", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalAlreadyAccepted):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_ACCEPTED", "Order already has an accepted proposal", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Order does not accept proposals anymore", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentCreationFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_CREATION_FAILED", "Payment could not be created", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
