package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tradbazar/pkg/errors"
	"tradbazar/pkg/logger"
)

// PaymentIntentCreator creates a payment intent and returns the client secret
// the frontend needs to confirm the card payment.
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// StripePaymentService talks to the Stripe payment intents API directly over
// HTTP with the secret key.
type StripePaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type stripeErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Amount must be greater than zero", nil)
	}
	if currency == "" {
		currency = "usd"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Internal("Failed to build payment intent request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("Payment gateway unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Internal("Failed to read payment gateway response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var stripeErr stripeErrorResponse
		if err := json.Unmarshal(body, &stripeErr); err == nil && stripeErr.Error.Message != "" {
			logger.Warn("Stripe rejected payment intent: %s", stripeErr.Error.Message)
			return nil, errors.Internal("Payment gateway rejected the request", fmt.Errorf("stripe: %s", stripeErr.Error.Message))
		}
		return nil, errors.Internal("Payment gateway rejected the request", fmt.Errorf("stripe: status %d", resp.StatusCode))
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, errors.Internal("Failed to parse payment gateway response", err)
	}

	logger.Info("Created payment intent %s for amount %d %s", intent.ID, amount, currency)
	return &intent, nil
}
