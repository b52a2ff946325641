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

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler handles HTTP requests for order reviews.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var payload request.SubmitReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.SubmitReview(c.Request.Context(), usecase.SubmitReviewInput{
		OrderID: payload.OrderID,
		Rating:  payload.Rating,
		Comment: payload.Comment,
	})
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(review))
}

func (h *ReviewHandler) GetReviewByOrder(c *gin.Context) {
	review, err := h.usecase.GetByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_RATING", "Rating must be an integer between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFinished):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FINISHED", "Order must be finished before reviewing", http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewAlreadyExists):
		return pkg.NewDomainErrorSimple("REVIEW_ALREADY_EXISTS", "Order already has a review", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
