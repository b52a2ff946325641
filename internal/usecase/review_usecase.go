package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFinished    = errors.New("order not finished")
	ErrReviewAlreadyExists = errors.New("review already exists")
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

// SubmitReviewInput is the client's one-shot rating of a finished order.
type SubmitReviewInput struct {
	OrderID string
	Rating  int
	Comment string
}

// IReviewUseCase gates review submission on the terminal FINISHED
// status and enforces one review per order.

type IReviewUseCase interface {
	SubmitReview(ctx context.Context, in SubmitReviewInput) (entities.Review, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Review, error)
}

type ReviewUseCase struct {
	orders    interfaces.IOrderRepository
	proposals interfaces.IProposalRepository
	reviews   interfaces.IReviewRepository
	log       *zap.SugaredLogger
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(orders interfaces.IOrderRepository, proposals interfaces.IProposalRepository, reviews interfaces.IReviewRepository, log *zap.SugaredLogger) *ReviewUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ReviewUseCase{orders: orders, proposals: proposals, reviews: reviews, log: log}
}

func (u *ReviewUseCase) SubmitReview(ctx context.Context, in SubmitReviewInput) (entities.Review, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	if in.OrderID == "" {
		return entities.Review{}, ErrInvalidOrderInput
	}
	if in.Rating < 1 || in.Rating > 5 {
		return entities.Review{}, ErrInvalidRating
	}

	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return entities.Review{}, err
	}
	if order.ID == "" {
		return entities.Review{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusFinished {
		return entities.Review{}, ErrOrderNotFinished
	}

	// Denormalize the winning dispatcher so averages need no join.
	dispatcherID := ""
	proposals, err := u.proposals.ListByOrderID(ctx, in.OrderID)
	if err != nil {
		return entities.Review{}, err
	}
	for _, p := range proposals {
		if p.IsAccepted {
			dispatcherID = p.DispatcherID
			break
		}
	}

	r := entities.Review{
		ID:           uuid.NewString(),
		OrderID:      in.OrderID,
		DispatcherID: dispatcherID,
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
		CreatedAt:    time.Now().UTC(),
	}

	// Duplicate submissions race here; the repository's conditional put
	// on order_id is the actual guard.
	created, err := u.reviews.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrReviewExists) {
			return entities.Review{}, ErrReviewAlreadyExists
		}
		return entities.Review{}, err
	}
	u.log.Infof("[review][usecase] recorded order_id=%s rating=%d dispatcher_id=%s", created.OrderID, created.Rating, created.DispatcherID)
	return created, nil
}

func (u *ReviewUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.Review, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Review{}, ErrInvalidOrderInput
	}
	r, err := u.reviews.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Review{}, err
	}
	if r.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}
