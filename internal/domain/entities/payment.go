package entities

import "time"

// PaymentStatus tracks a gateway charge from creation to confirmation.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusReceived PaymentStatus = "RECEIVED"
)

// Payment links an accepted proposal to the charge created at the
// payment gateway.
//
// Storage model (DynamoDB):
//   - PK: id (the gateway payment id, unique per charge)
//   - GSI1 (proposal_id-index): proposal_id
//
// The gateway payload is kept raw for reconciliation/audit; webhook
// confirmation resolves id -> proposal -> order.
type Payment struct {
	ID         string        `json:"id"`
	ProposalID string        `json:"proposal_id"`
	OrderID    string        `json:"order_id"`
	Amount     float64       `json:"amount"`
	Status     PaymentStatus `json:"status"`
	InvoiceURL string        `json:"invoice_url,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
