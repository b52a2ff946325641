package interfaces

import (
	"context"
	"errors"

	"descomplaca/internal/domain/entities"
)

// ErrReviewExists is returned by Create when the order already has a review.
var ErrReviewExists = errors.New("review already exists for order")

// IReviewRepository abstracts DynamoDB persistence for reviews.
//
// Create must fail with ErrReviewExists when a review was already
// recorded for the same order (conditional put on order_id).

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Review, error)
}
