package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75"
)

type MockSessionCreator struct {
	mock.Mock
}

func (m *MockSessionCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

var testSession = domain.CheckoutSession{
	AmountMinor:   5000,
	Currency:      "eur",
	ProductName:   "Travel booking - Ana",
	CustomerEmail: "ana@x.com",
	SuccessURL:    "http://localhost:4000/sucesso",
	CancelURL:     "http://localhost:4000/cancelado",
}

func TestNewCheckoutSessionParams(t *testing.T) {
	params := newCheckoutSessionParams(testSession)

	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "ana@x.com", *params.CustomerEmail)
	assert.Equal(t, "http://localhost:4000/sucesso", *params.SuccessURL)
	assert.Equal(t, "http://localhost:4000/cancelado", *params.CancelURL)

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, "eur", *item.PriceData.Currency)
	assert.Equal(t, int64(5000), *item.PriceData.UnitAmount)
	assert.Equal(t, "Travel booking - Ana", *item.PriceData.ProductData.Name)
}

func TestStripeClient_CreateCheckoutSession(t *testing.T) {
	sessions := &MockSessionCreator{}
	c := &StripeClient{sessions: sessions}
	ctx := context.Background()

	sessions.On("New", mock.MatchedBy(func(p *stripe.CheckoutSessionParams) bool {
		return p.Context == ctx && *p.LineItems[0].PriceData.UnitAmount == 5000
	})).Return(&stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil).Once()

	url, err := c.CreateCheckoutSession(ctx, testSession)
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", url)

	sessions.AssertExpectations(t)
}

func TestStripeClient_CreateCheckoutSession_ProviderError(t *testing.T) {
	sessions := &MockSessionCreator{}
	c := &StripeClient{sessions: sessions}

	stripeErr := &stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest,
		Msg:  "Invalid API Key provided: sk_test_***",
	}
	sessions.On("New", mock.Anything).Return(nil, stripeErr).Once()

	url, err := c.CreateCheckoutSession(context.Background(), testSession)
	assert.Empty(t, url)
	assert.EqualError(t, err, "Invalid API Key provided: sk_test_***")

	var unwrapped *stripe.Error
	assert.True(t, errors.As(err, &unwrapped))
	assert.Equal(t, stripe.ErrorTypeInvalidRequest, unwrapped.Type)
}

func TestStripeClient_CreateCheckoutSession_TransportError(t *testing.T) {
	sessions := &MockSessionCreator{}
	c := &StripeClient{sessions: sessions}

	sessions.On("New", mock.Anything).Return(nil, errors.New("dial tcp: i/o timeout")).Once()

	_, err := c.CreateCheckoutSession(context.Background(), testSession)
	assert.EqualError(t, err, "dial tcp: i/o timeout")
}

func TestNewStripeClient(t *testing.T) {
	c := NewStripeClient("sk_test_123")
	assert.NotNil(t, c)
	assert.NotNil(t, c.sessions)
}
