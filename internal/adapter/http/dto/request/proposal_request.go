package request

// SubmitProposalRequest is a dispatcher's bid payload. fee_value and
// tax_value may legitimately be zero (some services have no state fee),
// so they carry no required binding; the use case validates signs.
type SubmitProposalRequest struct {
	OrderID       string  `json:"order_id" binding:"required"`
	DispatcherID  string  `json:"dispatcher_id" binding:"required"`
	FeeValue      float64 `json:"fee_value"`
	TaxValue      float64 `json:"tax_value"`
	EstimatedDays int     `json:"estimated_days" binding:"required"`
	Description   string  `json:"description" binding:"required"`
}

// WithdrawProposalRequest identifies the dispatcher pulling the bid.
type WithdrawProposalRequest struct {
	DispatcherID string `json:"dispatcher_id" binding:"required"`
}
