package response

import (
	"time"

	"descomplaca/internal/domain/entities"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	DispatcherID string    `json:"dispatcher_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		OrderID:      r.OrderID,
		DispatcherID: r.DispatcherID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}
