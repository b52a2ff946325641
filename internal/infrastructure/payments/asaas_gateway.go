// Package payments talks to the Asaas billing API: customer records and
// PIX charges. Confirmation is never polled here; Asaas pushes a
// webhook handled by the checkout use case.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"descomplaca/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")

const defaultBaseURL = "https://sandbox.asaas.com/api/v3"

type AsaasGateway struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.SugaredLogger
}

var _ interfaces.IPaymentGateway = (*AsaasGateway)(nil)

// NewAsaasGateway builds the client. Timeouts live on the transport;
// callers needing tighter deadlines pass a context.
func NewAsaasGateway(baseURL, apiKey string, log *zap.SugaredLogger) (*AsaasGateway, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAsaasAPIKey
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AsaasGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}, nil
}

type asaasCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type asaasCustomerList struct {
	Data []asaasCustomer `json:"data"`
}

type asaasPayment struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Value      float64 `json:"value"`
	InvoiceURL string  `json:"invoiceUrl"`
}

// EnsureCustomer looks the customer up by email and creates it when
// absent. Asaas deduplicates by email on its side as well, so a lost
// lookup at worst creates a duplicate record, never a duplicate charge.
func (g *AsaasGateway) EnsureCustomer(ctx context.Context, name, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("customer email required")
	}

	var list asaasCustomerList
	query := "/customers?email=" + url.QueryEscape(email)
	if err := g.do(ctx, http.MethodGet, query, nil, &list); err != nil {
		return "", err
	}
	if len(list.Data) > 0 {
		return list.Data[0].ID, nil
	}

	var created asaasCustomer
	payload := map[string]any{"name": name, "email": email}
	if err := g.do(ctx, http.MethodPost, "/customers", payload, &created); err != nil {
		return "", err
	}
	g.log.Infof("[payments][gateway] customer created customer_id=%s", created.ID)
	return created.ID, nil
}

// CreateCharge creates a single charge. No internal retry: each call is
// one charge attempt, duplicate-billing avoidance is the caller's
// contract.
func (g *AsaasGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
	payload := map[string]any{
		"customer":    req.CustomerID,
		"billingType": req.BillingType,
		"value":       req.Value,
		"dueDate":     req.DueDate,
		"description": req.Description,
	}
	if len(req.Split) > 0 {
		payload["split"] = req.Split
	}

	var created asaasPayment
	if err := g.do(ctx, http.MethodPost, "/payments", payload, &created); err != nil {
		return interfaces.Charge{}, err
	}
	g.log.Infof("[payments][gateway] charge created payment_id=%s status=%s value=%.2f", created.ID, created.Status, created.Value)
	return interfaces.Charge{
		ID:         created.ID,
		Status:     created.Status,
		Value:      created.Value,
		InvoiceURL: created.InvoiceURL,
	}, nil
}

func (g *AsaasGateway) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("access_token", g.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		// The body carries the vendor diagnostic; it surfaces only in logs.
		return fmt.Errorf("asaas %s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("asaas %s %s: decoding response: %w", method, path, err)
		}
	}
	return nil
}
