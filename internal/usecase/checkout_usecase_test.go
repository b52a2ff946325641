package usecase

import (
	"context"
	"errors"
	"testing"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"
	mock_interfaces "descomplaca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	orders    *mock_interfaces.MockIOrderRepository
	proposals *mock_interfaces.MockIProposalRepository
	payments  *mock_interfaces.MockIPaymentRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newCheckoutFixture(t *testing.T, wallet string) (*CheckoutUseCase, checkoutFixture) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := checkoutFixture{
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}

	lifecycle := NewOrderLifecycleUseCase(f.orders, f.proposals, nil)
	uc := NewCheckoutUseCase(lifecycle, f.proposals, f.orders, f.payments, f.gateway, wallet, nil)
	return uc, f
}

func TestCheckoutUseCase_CreateCheckout(t *testing.T) {
	activeProposal := entities.Proposal{
		ID:           "prop-1",
		OrderID:      "order-1",
		DispatcherID: "disp-1",
		FeeValue:     150,
		TaxValue:     300,
		TotalValue:   450,
		Status:       entities.ProposalStatusActive,
	}
	order := entities.Order{
		ID:          "order-1",
		ServiceType: "licenciamento",
		OwnerEmail:  "client@mail.com",
		Status:      entities.OrderStatusProposalReceived,
	}

	t.Run("invalid proposal id", func(t *testing.T) {
		uc, _ := newCheckoutFixture(t, "")
		_, err := uc.CreateCheckout(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProposalInput) {
			t.Fatalf("expected ErrInvalidProposalInput, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.CreateCheckout(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("blocked proposal", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		blocked := activeProposal
		blocked.Status = entities.ProposalStatusBlocked
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(blocked, nil)

		_, err := uc.CreateCheckout(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalBlocked) {
			t.Fatalf("expected ErrProposalBlocked, got %v", err)
		}
	})

	t.Run("cancelled order never reaches the gateway", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		cancelled := order
		cancelled.Status = entities.OrderStatusCancelled
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal, nil).Times(2)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(cancelled, nil)

		_, err := uc.CreateCheckout(context.Background(), "prop-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("ensure customer fails", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal, nil).Times(2)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		f.proposals.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Proposal{activeProposal}, nil)
		accepted := activeProposal
		accepted.IsAccepted = true
		f.proposals.EXPECT().MarkAccepted(gomock.Any(), "prop-1").Return(accepted, nil)
		f.gateway.EXPECT().EnsureCustomer(gomock.Any(), "client@mail.com", "client@mail.com").Return("", errors.New("asaas down"))

		_, err := uc.CreateCheckout(context.Background(), "prop-1")
		if !errors.Is(err, ErrPaymentCreationFailed) {
			t.Fatalf("expected ErrPaymentCreationFailed, got %v", err)
		}
	})

	t.Run("charge creation fails", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal, nil).Times(2)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		f.proposals.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Proposal{activeProposal}, nil)
		accepted := activeProposal
		accepted.IsAccepted = true
		f.proposals.EXPECT().MarkAccepted(gomock.Any(), "prop-1").Return(accepted, nil)
		f.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return("cus-1", nil)
		f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.Charge{}, errors.New("asaas 500"))

		_, err := uc.CreateCheckout(context.Background(), "prop-1")
		if !errors.Is(err, ErrPaymentCreationFailed) {
			t.Fatalf("expected ErrPaymentCreationFailed, got %v", err)
		}
	})

	t.Run("success with dispatcher split", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "wallet-1")
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal, nil).Times(2)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		f.proposals.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Proposal{activeProposal}, nil)
		accepted := activeProposal
		accepted.IsAccepted = true
		f.proposals.EXPECT().MarkAccepted(gomock.Any(), "prop-1").Return(accepted, nil)
		f.gateway.EXPECT().EnsureCustomer(gomock.Any(), "client@mail.com", "client@mail.com").Return("cus-1", nil)
		f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ChargeRequest{})).DoAndReturn(
			func(_ context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
				if req.CustomerID != "cus-1" || req.BillingType != "PIX" || req.Value != 450 {
					t.Fatalf("unexpected charge request: %+v", req)
				}
				if len(req.Split) != 1 || req.Split[0].WalletID != "wallet-1" {
					t.Fatalf("expected split to wallet-1, got %+v", req.Split)
				}
				// 10% commission on the service fee only.
				if req.Split[0].FixedValue != 450-15 {
					t.Fatalf("expected split of 435.00, got %.2f", req.Split[0].FixedValue)
				}
				return interfaces.Charge{ID: "pay-1", Status: "PENDING", Value: 450, InvoiceURL: "https://asaas/inv/pay-1"}, nil
			},
		)
		f.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "pay-1" || p.OrderID != "order-1" || p.ProposalID != "prop-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusPending {
					t.Fatalf("expected PENDING, got %s", p.Status)
				}
				return p, nil
			},
		)

		handle, err := uc.CreateCheckout(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if handle.PaymentID != "pay-1" || handle.InvoiceURL != "https://asaas/inv/pay-1" || handle.Amount != 450 {
			t.Fatalf("unexpected handle: %+v", handle)
		}
	})

	t.Run("success without wallet skips split", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal, nil).Times(2)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		f.proposals.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Proposal{activeProposal}, nil)
		accepted := activeProposal
		accepted.IsAccepted = true
		f.proposals.EXPECT().MarkAccepted(gomock.Any(), "prop-1").Return(accepted, nil)
		f.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return("cus-1", nil)
		f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
				if len(req.Split) != 0 {
					t.Fatalf("expected no split, got %+v", req.Split)
				}
				return interfaces.Charge{ID: "pay-1", Value: 450}, nil
			},
		)
		f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		if _, err := uc.CreateCheckout(context.Background(), "prop-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checkout of already accepted proposal can be retried", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		accepted := activeProposal
		accepted.IsAccepted = true
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(accepted, nil).Times(2)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		f.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return("cus-1", nil)
		f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
			Return(interfaces.Charge{ID: "pay-2", Value: 450}, nil)
		f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		handle, err := uc.CreateCheckout(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if handle.PaymentID != "pay-2" {
			t.Fatalf("expected fresh charge, got %+v", handle)
		}
	})
}

func TestCheckoutUseCase_HandleGatewayEvent(t *testing.T) {
	t.Run("unknown event is acknowledged", func(t *testing.T) {
		uc, _ := newCheckoutFixture(t, "")
		if err := uc.HandleGatewayEvent(context.Background(), "PAYMENT_CREATED", "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		uc, _ := newCheckoutFixture(t, "")
		err := uc.HandleGatewayEvent(context.Background(), "PAYMENT_CONFIRMED", " ")
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		err := uc.HandleGatewayEvent(context.Background(), "PAYMENT_CONFIRMED", "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("settlement flips payment and order", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.payments.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", OrderID: "order-1", Status: entities.PaymentStatusPending}, nil)
		f.payments.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusReceived).
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusReceived}, nil)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusProposalReceived}, nil)
		f.proposals.EXPECT().ListByOrderID(gomock.Any(), "order-1").
			Return([]entities.Proposal{{ID: "prop-1", OrderID: "order-1", IsAccepted: true}}, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusPaid).
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)

		if err := uc.HandleGatewayEvent(context.Background(), "PAYMENT_CONFIRMED", "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate settlement is a no-op", func(t *testing.T) {
		uc, f := newCheckoutFixture(t, "")
		f.payments.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", OrderID: "order-1", Status: entities.PaymentStatusReceived}, nil)
		f.orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)

		if err := uc.HandleGatewayEvent(context.Background(), "PAYMENT_RECEIVED", "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
