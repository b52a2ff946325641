package handlers

import (
	"errors"
	"net/http"

	request "descomplaca/internal/adapter/http/dto/request"
	response "descomplaca/internal/adapter/http/dto/response"
	"descomplaca/internal/usecase"
	"descomplaca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// ProposalHandler handles HTTP requests for dispatcher bids.
//
// Note that a moderation-blocked proposal is NOT an HTTP error: the
// write succeeds with moderation_status=BLOCKED and a redacted
// description, and callers are expected to check that field.

type ProposalHandler struct {
	usecase usecase.IOrderLifecycleUseCase
}

func NewProposalHandler(uc usecase.IOrderLifecycleUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	var payload request.SubmitProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.SubmitProposal(c.Request.Context(), usecase.SubmitProposalInput{
		OrderID:       payload.OrderID,
		DispatcherID:  payload.DispatcherID,
		FeeValue:      payload.FeeValue,
		TaxValue:      payload.TaxValue,
		EstimatedDays: payload.EstimatedDays,
		Description:   payload.Description,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) ListProposalsByOrder(c *gin.Context) {
	proposals, err := h.usecase.ListProposals(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) WithdrawProposal(c *gin.Context) {
	var payload request.WithdrawProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.WithdrawProposal(c.Request.Context(), c.Param("proposal_id"), payload.DispatcherID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalInput), errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotOpenForProposals):
		return pkg.NewDomainErrorSimple("ORDER_NOT_OPEN", "Order is not open for proposals", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalAlreadyAccepted):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_ACCEPTED", "Order already has an accepted proposal", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
