package response

import (
	"time"

	"descomplaca/internal/domain/entities"
)

type MessageResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Content:    m.Content,
		Timestamp:  m.Timestamp,
	}
}

func FromMessages(messages []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, FromMessage(m))
	}
	return out
}
