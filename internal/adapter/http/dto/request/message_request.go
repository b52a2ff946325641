package request

// SendMessageRequest posts a chat message into an order's channel.
type SendMessageRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	SenderID   string `json:"sender_id" binding:"required"`
	SenderRole string `json:"sender_role" binding:"required"`
	Content    string `json:"content" binding:"required"`
}
