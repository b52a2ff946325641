package entities

import "time"

// ProposalStatus is the visibility state of a dispatcher's bid.
//
//   - ACTIVE: passed moderation, selectable by the client.
//   - BLOCKED: contact information detected at creation; the proposal is
//     kept (fee/tax/turnaround stay useful signal) but its description is
//     redacted and it can never be accepted.
//   - WITHDRAWN: dispatcher pulled the bid before acceptance.

type ProposalStatus string

const (
	ProposalStatusActive    ProposalStatus = "ACTIVE"
	ProposalStatusBlocked   ProposalStatus = "BLOCKED"
	ProposalStatusWithdrawn ProposalStatus = "WITHDRAWN"
)

// Proposal is a dispatcher's bid against an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Invariant: TotalValue = FeeValue + TaxValue, both non-negative.
// Proposals are immutable after creation except for acceptance and
// withdrawal; the description is never re-scanned.
type Proposal struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"order_id"`
	DispatcherID  string         `json:"dispatcher_id"`
	FeeValue      float64        `json:"fee_value"`
	TaxValue      float64        `json:"tax_value"`
	TotalValue    float64        `json:"total_value"`
	EstimatedDays int            `json:"estimated_days"`
	Description   string         `json:"description"`
	IsAccepted    bool           `json:"is_accepted"`
	Status        ProposalStatus `json:"moderation_status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Selectable reports whether the client may accept this proposal.
func (p Proposal) Selectable() bool {
	return p.Status == ProposalStatusActive
}
