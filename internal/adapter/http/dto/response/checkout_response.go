package response

import "descomplaca/internal/usecase"

// CheckoutResponse hands the client the gateway redirect. payment_url
// mirrors the historical field name consumed by the web client.
type CheckoutResponse struct {
	ProposalID string  `json:"proposal_id"`
	OrderID    string  `json:"order_id"`
	PaymentID  string  `json:"payment_id"`
	Amount     float64 `json:"amount"`
	PaymentURL string  `json:"payment_url"`
}

func FromCheckoutHandle(h usecase.CheckoutHandle) CheckoutResponse {
	return CheckoutResponse{
		ProposalID: h.ProposalID,
		OrderID:    h.OrderID,
		PaymentID:  h.PaymentID,
		Amount:     h.Amount,
		PaymentURL: h.InvoiceURL,
	}
}
