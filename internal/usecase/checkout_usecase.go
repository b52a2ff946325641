package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentCreationFailed = errors.New("payment creation failed")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
)

// Platform take: 10% of the dispatcher's fee. State taxes pass through
// untouched.
const commissionPercent = 0.10

// Gateway webhook events that mean the charge is settled.
const (
	EventPaymentConfirmed = "PAYMENT_CONFIRMED"
	EventPaymentReceived  = "PAYMENT_RECEIVED"
)

// CheckoutHandle is the caller-facing result of a checkout: an opaque
// redirect target plus enough ids to correlate the webhook later.
type CheckoutHandle struct {
	ProposalID string  `json:"proposal_id"`
	OrderID    string  `json:"order_id"`
	PaymentID  string  `json:"payment_id"`
	Amount     float64 `json:"amount"`
	InvoiceURL string  `json:"invoice_url"`
}

// ICheckoutUseCase orchestrates charge creation for an accepted
// proposal and consumes the gateway's confirmation callback.
//
// CreateCheckout never polls: confirmation arrives through
// HandleGatewayEvent, which then drives the PAID transition. A failed
// checkout is safe to repeat; the charge is re-derived from the
// proposal on every call and no partial state is kept.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, proposalID string) (CheckoutHandle, error)
	HandleGatewayEvent(ctx context.Context, event, gatewayPaymentID string) error
}

type CheckoutUseCase struct {
	lifecycle IOrderLifecycleUseCase
	proposals interfaces.IProposalRepository
	orders    interfaces.IOrderRepository
	payments  interfaces.IPaymentRepository
	gateway   interfaces.IPaymentGateway

	// dispatcherWallet receives the split transfer. Empty disables the
	// split (sandbox without subaccounts).
	dispatcherWallet string
	log              *zap.SugaredLogger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	lifecycle IOrderLifecycleUseCase,
	proposals interfaces.IProposalRepository,
	orders interfaces.IOrderRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	dispatcherWallet string,
	log *zap.SugaredLogger,
) *CheckoutUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CheckoutUseCase{
		lifecycle:        lifecycle,
		proposals:        proposals,
		orders:           orders,
		payments:         payments,
		gateway:          gateway,
		dispatcherWallet: dispatcherWallet,
		log:              log,
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, proposalID string) (CheckoutHandle, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return CheckoutHandle{}, ErrInvalidProposalInput
	}
	if u.gateway == nil {
		return CheckoutHandle{}, errors.New("payment gateway not configured")
	}

	p, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return CheckoutHandle{}, err
	}
	if p.ID == "" {
		return CheckoutHandle{}, ErrProposalNotFound
	}
	if p.Status == entities.ProposalStatusBlocked {
		return CheckoutHandle{}, ErrProposalBlocked
	}

	// Acceptance is serialized by the lifecycle inside the order's
	// critical section; re-running a checkout for the proposal already
	// accepted is a no-op there.
	accepted, err := u.lifecycle.AcceptProposal(ctx, p.OrderID, p.ID)
	if err != nil {
		return CheckoutHandle{}, err
	}

	order, err := u.orders.GetByID(ctx, accepted.OrderID)
	if err != nil {
		return CheckoutHandle{}, err
	}
	if order.ID == "" {
		return CheckoutHandle{}, ErrOrderNotFound
	}

	customerID, err := u.gateway.EnsureCustomer(ctx, order.OwnerEmail, order.OwnerEmail)
	if err != nil {
		// Vendor diagnostics stay in the log, callers get one stable error.
		u.log.Errorf("[checkout][usecase] ensure-customer failed order_id=%s err=%v", order.ID, err)
		return CheckoutHandle{}, ErrPaymentCreationFailed
	}

	req := interfaces.ChargeRequest{
		CustomerID:  customerID,
		BillingType: "PIX",
		Value:       accepted.TotalValue,
		DueDate:     time.Now().UTC().Format("2006-01-02"),
		Description: fmt.Sprintf("Pedido %s - %s", order.ID, order.ServiceType),
	}
	if u.dispatcherWallet != "" {
		commission := accepted.FeeValue * commissionPercent
		req.Split = []interfaces.ChargeSplit{{
			WalletID:   u.dispatcherWallet,
			FixedValue: accepted.TotalValue - commission,
		}}
	}

	charge, err := u.gateway.CreateCharge(ctx, req)
	if err != nil {
		u.log.Errorf("[checkout][usecase] create-charge failed order_id=%s proposal_id=%s err=%v", order.ID, accepted.ID, err)
		return CheckoutHandle{}, ErrPaymentCreationFailed
	}

	payment := entities.Payment{
		ID:         charge.ID,
		ProposalID: accepted.ID,
		OrderID:    order.ID,
		Amount:     charge.Value,
		Status:     entities.PaymentStatusPending,
		InvoiceURL: charge.InvoiceURL,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := u.payments.Create(ctx, payment); err != nil {
		return CheckoutHandle{}, err
	}

	u.log.Infof("[checkout][usecase] charge created order_id=%s proposal_id=%s payment_id=%s value=%.2f", order.ID, accepted.ID, charge.ID, charge.Value)
	return CheckoutHandle{
		ProposalID: accepted.ID,
		OrderID:    order.ID,
		PaymentID:  charge.ID,
		Amount:     charge.Value,
		InvoiceURL: charge.InvoiceURL,
	}, nil
}

// HandleGatewayEvent consumes the provider's server-pushed callback.
// Unknown events are acknowledged and dropped; settlement events flip
// the payment and drive the order into the execution phase.
func (u *CheckoutUseCase) HandleGatewayEvent(ctx context.Context, event, gatewayPaymentID string) error {
	event = strings.ToUpper(strings.TrimSpace(event))
	gatewayPaymentID = strings.TrimSpace(gatewayPaymentID)

	if event != EventPaymentConfirmed && event != EventPaymentReceived {
		u.log.Debugf("[checkout][usecase] ignoring gateway event=%s", event)
		return nil
	}
	if gatewayPaymentID == "" {
		return ErrInvalidWebhookPayload
	}

	payment, err := u.payments.GetByID(ctx, gatewayPaymentID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		return ErrPaymentNotFound
	}

	if payment.Status != entities.PaymentStatusReceived {
		if _, err := u.payments.UpdateStatus(ctx, payment.ID, entities.PaymentStatusReceived); err != nil {
			return err
		}
	}

	if _, err := u.lifecycle.ConfirmPayment(ctx, payment.OrderID); err != nil {
		return err
	}
	u.log.Infof("[checkout][usecase] payment settled payment_id=%s order_id=%s event=%s", payment.ID, payment.OrderID, event)
	return nil
}
