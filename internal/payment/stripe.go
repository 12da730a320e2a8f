// Package payment creates hosted Stripe Checkout sessions. The client is
// constructed explicitly and injected; nothing here touches package-level
// Stripe state.
package payment

import (
	"context"
	"io"
	"log"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// LineItem is one priced row of a payment session. UnitAmount is in the
// smallest currency unit.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
}

// SessionCreator turns line items into a hosted payment page URL.
type SessionCreator interface {
	CreateSession(ctx context.Context, items []LineItem) (string, error)
}

// StripeClient implements SessionCreator against the Stripe Checkout API.
type StripeClient struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
	logger     *log.Logger
}

func NewStripe(apiKey, currency, successURL, cancelURL string, logger *log.Logger) *StripeClient {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &StripeClient{
		api:        client.New(apiKey, nil),
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateSession creates a card payment session and returns its redirect URL.
func (c *StripeClient) CreateSession(ctx context.Context, items []LineItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(c.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
	}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.logger.Printf("payment: create session items=%d error=%v", len(items), err)
		return "", err
	}
	c.logger.Printf("payment: created session id=%s items=%d", sess.ID, len(items))
	return sess.URL, nil
}
