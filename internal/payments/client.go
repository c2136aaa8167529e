// Package payments integrates the card payment gateway: creating
// payment intents for orders and processing the gateway's webhook
// callbacks.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
)

// Intent is a created payment intent. The client secret is handed to
// the frontend to complete the card flow.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// IntentRequest describes the payment to collect.
type IntentRequest struct {
	Amount        decimal.Decimal
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Description   string
}

// Client talks to the payment gateway's HTTP API.
type Client struct {
	baseURL   string
	secretKey string
	currency  string
	http      *http.Client
	log       *logger.Logger
}

// NewClient creates a gateway client.
func NewClient(baseURL, secretKey, currency string, log *logger.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		currency:  currency,
		http:      &http.Client{Timeout: 15 * time.Second},
		log:       log,
	}
}

type intentPayload struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// CreatePaymentIntent registers a payment with the gateway. The amount
// is converted to the smallest currency unit, as gateways expect.
func (c *Client) CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Payment for Order %s", req.OrderNumber)
	}

	payload := intentPayload{
		Amount:      req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency:    c.currency,
		Description: description,
		Metadata: map[string]string{
			"order_number":  req.OrderNumber,
			"customer_name": req.CustomerName,
		},
	}

	var resp intentResponse
	if err := c.post(ctx, "/v1/payment_intents", payload, &resp); err != nil {
		c.log.Error("payment_intent_failed", "", "Payment intent creation failed", err, map[string]interface{}{
			"order_number": req.OrderNumber,
		})
		return nil, errs.Internal("Failed to create payment intent")
	}

	return &Intent{ID: resp.ID, ClientSecret: resp.ClientSecret, Status: resp.Status}, nil
}

// ConfirmPaymentIntent reports whether the intent has succeeded.
func (c *Client) ConfirmPaymentIntent(ctx context.Context, intentID string) (bool, error) {
	var resp intentResponse
	if err := c.get(ctx, "/v1/payment_intents/"+intentID, &resp); err != nil {
		return false, err
	}
	return resp.Status == "succeeded", nil
}

// CancelPaymentIntent cancels a pending intent.
func (c *Client) CancelPaymentIntent(ctx context.Context, intentID string) error {
	return c.post(ctx, "/v1/payment_intents/"+intentID+"/cancel", struct{}{}, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
