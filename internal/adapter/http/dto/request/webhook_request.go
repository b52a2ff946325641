package request

// AsaasWebhookRequest is the shape Asaas pushes on payment events. Only
// the event name and the payment id matter; the rest of the payload is
// ignored.
type AsaasWebhookRequest struct {
	Event   string `json:"event" binding:"required"`
	Payment struct {
		ID string `json:"id"`
	} `json:"payment"`
}
