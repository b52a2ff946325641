package interfaces

import (
	"context"
	"descomplaca/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Proposals are immutable after creation except for the acceptance flag
// and the ACTIVE -> WITHDRAWN status change.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Proposal, error)
	MarkAccepted(ctx context.Context, id string) (entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
