package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/domain/moderation"
	"descomplaca/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderNotOpenForProposals = errors.New("order not open for proposals")
	ErrOrderAlreadyPaid         = errors.New("order already paid")
	ErrNoAcceptedProposal       = errors.New("no accepted proposal for order")
	ErrInvalidTransition        = errors.New("invalid order status transition")
	ErrProposalNotFound         = errors.New("proposal not found")
	ErrProposalBlocked          = errors.New("proposal blocked by moderation")
	ErrProposalWithdrawn        = errors.New("proposal withdrawn")
	ErrProposalAlreadyAccepted  = errors.New("order already has an accepted proposal")
	ErrInvalidOrderInput        = errors.New("invalid order input")
	ErrInvalidProposalInput     = errors.New("invalid proposal input")
)

// CreateOrderInput carries the client's service request. OwnerID and
// OwnerEmail come from the identity provider and are trusted as-is.
type CreateOrderInput struct {
	VehiclePlate   string
	VehicleRenavam string
	ServiceType    string
	Description    string
	City           string
	State          string
	OwnerID        string
	OwnerEmail     string
}

// SubmitProposalInput carries a dispatcher's bid against an order.
type SubmitProposalInput struct {
	OrderID       string
	DispatcherID  string
	FeeValue      float64
	TaxValue      float64
	EstimatedDays int
	Description   string
}

// IOrderLifecycleUseCase owns every order status transition. No other
// component mutates order or proposal records.
//
// Operation map:
//   - SubmitProposal: OPEN/PROPOSAL_RECEIVED only, runs moderation once,
//     forces status to PROPOSAL_RECEIVED on the first selectable bid.
//   - AcceptProposal: marks exactly one proposal accepted; does NOT
//     set PAID, that happens only on confirmed payment.
//   - ConfirmPayment: PROPOSAL_RECEIVED -> PAID, webhook-driven,
//     idempotent once in the execution phase.
//   - AdvanceExecution: immediate-successor checkpoints only.

type IOrderLifecycleUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOpenOrders(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error)
	SubmitProposal(ctx context.Context, in SubmitProposalInput) (entities.Proposal, error)
	ListProposals(ctx context.Context, orderID string) ([]entities.Proposal, error)
	AcceptProposal(ctx context.Context, orderID, proposalID string) (entities.Proposal, error)
	WithdrawProposal(ctx context.Context, proposalID, dispatcherID string) (entities.Proposal, error)
	ConfirmPayment(ctx context.Context, orderID string) (entities.Order, error)
	AdvanceExecution(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type OrderLifecycleUseCase struct {
	orders    interfaces.IOrderRepository
	proposals interfaces.IProposalRepository
	locks     *orderLocks
	log       *zap.SugaredLogger
}

var _ IOrderLifecycleUseCase = (*OrderLifecycleUseCase)(nil)

func NewOrderLifecycleUseCase(orders interfaces.IOrderRepository, proposals interfaces.IProposalRepository, log *zap.SugaredLogger) *OrderLifecycleUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &OrderLifecycleUseCase{
		orders:    orders,
		proposals: proposals,
		locks:     newOrderLocks(),
		log:       log,
	}
}

func (u *OrderLifecycleUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	in.VehiclePlate = strings.ToUpper(strings.TrimSpace(in.VehiclePlate))
	in.ServiceType = strings.ToLower(strings.TrimSpace(in.ServiceType))
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.OwnerEmail = strings.TrimSpace(in.OwnerEmail)

	if in.VehiclePlate == "" || in.ServiceType == "" || in.City == "" || in.State == "" || in.OwnerID == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:             uuid.NewString(),
		VehiclePlate:   in.VehiclePlate,
		VehicleRenavam: strings.TrimSpace(in.VehicleRenavam),
		ServiceType:    in.ServiceType,
		Description:    strings.TrimSpace(in.Description),
		City:           in.City,
		State:          in.State,
		OwnerID:        in.OwnerID,
		OwnerEmail:     in.OwnerEmail,
		Status:         entities.OrderStatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Infof("[order][usecase] created order_id=%s service_type=%s city=%s/%s", created.ID, created.ServiceType, created.City, created.State)
	return created, nil
}

func (u *OrderLifecycleUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ListOpenOrders is the dispatcher lead list. Orders past OPEN are
// deliberately hidden so claimed leads are never exposed to other
// dispatchers.
func (u *OrderLifecycleUseCase) ListOpenOrders(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	filter.City = strings.TrimSpace(filter.City)
	filter.State = strings.ToUpper(strings.TrimSpace(filter.State))
	return u.orders.ListOpen(ctx, filter)
}

func (u *OrderLifecycleUseCase) SubmitProposal(ctx context.Context, in SubmitProposalInput) (entities.Proposal, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.DispatcherID = strings.TrimSpace(in.DispatcherID)
	in.Description = strings.TrimSpace(in.Description)

	if in.OrderID == "" || in.DispatcherID == "" || in.Description == "" {
		return entities.Proposal{}, ErrInvalidProposalInput
	}
	if in.FeeValue < 0 || in.TaxValue < 0 || in.EstimatedDays <= 0 {
		return entities.Proposal{}, ErrInvalidProposalInput
	}

	unlock := u.locks.acquire(in.OrderID)
	defer unlock()

	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if order.ID == "" {
		return entities.Proposal{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusOpen && order.Status != entities.OrderStatusProposalReceived {
		return entities.Proposal{}, ErrOrderNotOpenForProposals
	}

	// One-shot moderation. A blocked proposal is persisted anyway with a
	// redacted description: the leakage channel dies, the price signal
	// survives.
	status := entities.ProposalStatusActive
	description := in.Description
	if scan := moderation.Scan(in.Description); scan.Blocked {
		status = entities.ProposalStatusBlocked
		description = moderation.RedactedMarker
		u.log.Warnf("[proposal][usecase] moderation blocked order_id=%s dispatcher_id=%s reason=%s", in.OrderID, in.DispatcherID, scan.Reason)
	}

	p := entities.Proposal{
		ID:            uuid.NewString(),
		OrderID:       in.OrderID,
		DispatcherID:  in.DispatcherID,
		FeeValue:      in.FeeValue,
		TaxValue:      in.TaxValue,
		TotalValue:    in.FeeValue + in.TaxValue,
		EstimatedDays: in.EstimatedDays,
		Description:   description,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.proposals.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}

	// The status transition is owned here, inside the order's critical
	// section, never by the caller. Only a selectable bid counts: a
	// blocked one must not hide the lead from other dispatchers.
	if status == entities.ProposalStatusActive && order.Status == entities.OrderStatusOpen {
		if _, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusProposalReceived); err != nil {
			return entities.Proposal{}, err
		}
	}

	u.log.Infof("[proposal][usecase] submitted proposal_id=%s order_id=%s total=%.2f status=%s", created.ID, created.OrderID, created.TotalValue, created.Status)
	return created, nil
}

func (u *OrderLifecycleUseCase) ListProposals(ctx context.Context, orderID string) ([]entities.Proposal, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderInput
	}
	all, err := u.proposals.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Withdrawn bids disappear from the client's view; blocked ones stay
	// visible (already redacted at write time).
	visible := make([]entities.Proposal, 0, len(all))
	for _, p := range all {
		if p.Status == entities.ProposalStatusWithdrawn {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// AcceptProposal marks exactly one proposal as accepted. Acceptance
// itself is serialized: the first acceptance locks the order against
// further acceptances, without waiting for the payment to confirm.
func (u *OrderLifecycleUseCase) AcceptProposal(ctx context.Context, orderID, proposalID string) (entities.Proposal, error) {
	orderID = strings.TrimSpace(orderID)
	proposalID = strings.TrimSpace(proposalID)
	if orderID == "" || proposalID == "" {
		return entities.Proposal{}, ErrInvalidProposalInput
	}

	unlock := u.locks.acquire(orderID)
	defer unlock()

	p, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" || p.OrderID != orderID {
		return entities.Proposal{}, ErrProposalNotFound
	}
	switch p.Status {
	case entities.ProposalStatusBlocked:
		return entities.Proposal{}, ErrProposalBlocked
	case entities.ProposalStatusWithdrawn:
		return entities.Proposal{}, ErrProposalWithdrawn
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if order.ID == "" {
		return entities.Proposal{}, ErrOrderNotFound
	}
	if order.Status.InExecutionPhase() {
		return entities.Proposal{}, ErrOrderAlreadyPaid
	}
	// Acceptance needs a live order holding at least one selectable bid.
	// CANCELLED in particular must not reach the charge path.
	if order.Status != entities.OrderStatusProposalReceived {
		return entities.Proposal{}, ErrInvalidTransition
	}

	// Safe to retry a failed checkout for the proposal already accepted.
	if p.IsAccepted {
		return p, nil
	}

	siblings, err := u.proposals.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Proposal{}, err
	}
	for _, s := range siblings {
		if s.IsAccepted && s.ID != p.ID {
			return entities.Proposal{}, ErrProposalAlreadyAccepted
		}
	}

	accepted, err := u.proposals.MarkAccepted(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.log.Infof("[proposal][usecase] accepted proposal_id=%s order_id=%s total=%.2f", accepted.ID, orderID, accepted.TotalValue)
	return accepted, nil
}

func (u *OrderLifecycleUseCase) WithdrawProposal(ctx context.Context, proposalID, dispatcherID string) (entities.Proposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	dispatcherID = strings.TrimSpace(dispatcherID)
	if proposalID == "" || dispatcherID == "" {
		return entities.Proposal{}, ErrInvalidProposalInput
	}

	p, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" || p.DispatcherID != dispatcherID {
		return entities.Proposal{}, ErrProposalNotFound
	}

	unlock := u.locks.acquire(p.OrderID)
	defer unlock()

	// Re-read under the lock: acceptance may have landed in between.
	p, err = u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.IsAccepted {
		return entities.Proposal{}, ErrProposalAlreadyAccepted
	}
	if p.Status == entities.ProposalStatusWithdrawn {
		return p, nil
	}

	withdrawn, err := u.proposals.UpdateStatus(ctx, p.ID, entities.ProposalStatusWithdrawn)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.log.Infof("[proposal][usecase] withdrawn proposal_id=%s order_id=%s", withdrawn.ID, withdrawn.OrderID)
	return withdrawn, nil
}

// ConfirmPayment is invoked by the gateway webhook, never by callers
// directly. Confirmation latency is unbounded, so the checkout path
// does not wait for it.
func (u *OrderLifecycleUseCase) ConfirmPayment(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}

	unlock := u.locks.acquire(orderID)
	defer unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status.InExecutionPhase() {
		// Gateway webhooks are at-least-once; a duplicate confirmation is
		// not an error.
		return order, nil
	}
	if order.Status != entities.OrderStatusProposalReceived {
		return entities.Order{}, ErrInvalidTransition
	}

	siblings, err := u.proposals.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	hasAccepted := false
	for _, s := range siblings {
		if s.IsAccepted {
			hasAccepted = true
			break
		}
	}
	if !hasAccepted {
		return entities.Order{}, ErrNoAcceptedProposal
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, entities.OrderStatusPaid)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Infof("[order][usecase] payment confirmed order_id=%s status=%s", orderID, updated.Status)
	return updated, nil
}

// AdvanceExecution moves the order one checkpoint forward. Only the
// immediate successor of the current status is accepted.
func (u *OrderLifecycleUseCase) AdvanceExecution(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}
	switch target {
	case entities.OrderStatusInProgress, entities.OrderStatusConcluded, entities.OrderStatusFinished:
	default:
		return entities.Order{}, ErrInvalidTransition
	}

	unlock := u.locks.acquire(orderID)
	defer unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status == target || !entities.CanTransition(order.Status, target) {
		return entities.Order{}, ErrInvalidTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, target)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Infof("[order][usecase] execution advanced order_id=%s %s->%s", orderID, order.Status, updated.Status)
	return updated, nil
}

func (u *OrderLifecycleUseCase) CancelOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}

	unlock := u.locks.acquire(orderID)
	defer unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		return entities.Order{}, ErrInvalidTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Infof("[order][usecase] cancelled order_id=%s", orderID)
	return updated, nil
}
