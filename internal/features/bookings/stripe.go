package bookings

import (
	"errors"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

// Gateway wraps payment-intent creation so the handler stays testable
// and the Stripe key is set in exactly one place.
type Gateway struct {
	configured bool
}

func NewGateway(secretKey string) *Gateway {
	if secretKey == "" {
		return &Gateway{}
	}
	stripe.Key = secretKey
	return &Gateway{configured: true}
}

// CreateIntent creates a card payment intent for the amount in USD
// cents and returns the opaque client secret.
func (g *Gateway) CreateIntent(amount int64) (string, error) {
	if !g.configured {
		return "", errors.New("stripe is not configured")
	}
	if amount <= 0 {
		return "", errors.New("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
