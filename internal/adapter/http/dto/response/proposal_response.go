package response

import (
	"time"

	"descomplaca/internal/domain/entities"
)

// ProposalResponse intentionally omits nothing about money: blocked
// proposals keep their fee/tax signal, only the description was
// redacted at write time.
type ProposalResponse struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	DispatcherID     string    `json:"dispatcher_id"`
	FeeValue         float64   `json:"fee_value"`
	TaxValue         float64   `json:"tax_value"`
	TotalValue       float64   `json:"total_value"`
	EstimatedDays    int       `json:"estimated_days"`
	Description      string    `json:"description"`
	IsAccepted       bool      `json:"is_accepted"`
	ModerationStatus string    `json:"moderation_status"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		DispatcherID:     p.DispatcherID,
		FeeValue:         p.FeeValue,
		TaxValue:         p.TaxValue,
		TotalValue:       p.TotalValue,
		EstimatedDays:    p.EstimatedDays,
		Description:      p.Description,
		IsAccepted:       p.IsAccepted,
		ModerationStatus: string(p.Status),
		CreatedAt:        p.CreatedAt,
	}
}

func FromProposals(proposals []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, FromProposal(p))
	}
	return out
}
