package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"medcamp/internal/domain"
)

// IntentCreator creates a payment intent with the downstream processor and
// returns the client secret the frontend confirms against.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountInCents int64) (string, error)
}

// StripeProvider implements IntentCreator against the Stripe API.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create payment intent: %v", domain.ErrProviderFailure, err)
	}
	return intent.ClientSecret, nil
}

var _ IntentCreator = (*StripeProvider)(nil)
