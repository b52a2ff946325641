package interfaces

import "context"

// ChargeSplit routes part of a charge to a dispatcher wallet.
type ChargeSplit struct {
	WalletID   string  `json:"walletId"`
	FixedValue float64 `json:"fixedValue"`
}

// ChargeRequest is the provider-facing charge creation payload.
// DueDate uses the gateway's YYYY-MM-DD convention.
type ChargeRequest struct {
	CustomerID  string
	BillingType string
	Value       float64
	DueDate     string
	Description string
	Split       []ChargeSplit
}

// Charge is the provider's view of a created charge.
type Charge struct {
	ID         string
	Status     string
	Value      float64
	InvoiceURL string
}

// IPaymentGateway abstracts the external billing provider (Asaas).
//
// EnsureCustomer resolves or creates the provider-side customer record
// for an order owner. CreateCharge is at-most-once per call: it never
// retries internally, so a failed attempt can be repeated safely by the
// caller without duplicate billing.
type IPaymentGateway interface {
	EnsureCustomer(ctx context.Context, name, email string) (customerID string, err error)
	CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
}
