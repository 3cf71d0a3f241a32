package payment

import (
	"context"
	"errors"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// sessionCreator is the part of the stripe checkout session client we use.
type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeClient struct {
	sessions sessionCreator
}

func NewStripeClient(secretKey string) *StripeClient {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeClient{sessions: sc.CheckoutSessions}
}

// CreateCheckoutSession creates a hosted card-payment session with a single
// line item and returns its redirect URL.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, s domain.CheckoutSession) (string, error) {
	params := newCheckoutSessionParams(s)
	params.Context = ctx

	session, err := c.sessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return "", &providerError{err: stripeErr}
		}
		return "", err
	}
	return session.URL, nil
}

func newCheckoutSessionParams(s domain.CheckoutSession) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(s.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(s.ProductName),
					},
					UnitAmount: stripe.Int64(s.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.SuccessURL),
		CancelURL:  stripe.String(s.CancelURL),
	}
}

// providerError reports only the provider's human-readable message while
// keeping the full stripe error reachable through errors.As.
type providerError struct {
	err *stripe.Error
}

func (e *providerError) Error() string { return e.err.Msg }

func (e *providerError) Unwrap() error { return e.err }
