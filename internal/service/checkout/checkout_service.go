package checkout

import (
	"context"
	"strings"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/Domenick1991/reserva-backend/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	productNamePrefix = "Travel booking - "

	// maxAmountMinor is the largest unit amount the payment provider accepts.
	maxAmountMinor = 99999999
)

type CheckoutUseCase interface {
	CreateCheckout(ctx context.Context, input CheckoutInput) (string, error)
}

// PaymentProvider creates a hosted payment session and returns its redirect URL.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, session domain.CheckoutSession) (string, error)
}

type CheckoutInput struct {
	Amount decimal.Decimal `json:"amount"`
	Name   string          `json:"name" validate:"required"`
	Email  string          `json:"email" validate:"required"`
}

type Settings struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

type CheckoutService struct {
	provider PaymentProvider
	settings Settings
	logger   *zap.Logger
	validate *validator.Validate
}

func NewCheckoutService(provider PaymentProvider, settings Settings, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		provider: provider,
		settings: settings,
		logger:   logger,
		validate: validation.New(),
	}
}

func (s *CheckoutService) CreateCheckout(ctx context.Context, input CheckoutInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	amountMinor, ok := toMinorUnits(input.Amount)
	if !ok {
		return "", &domain.ValidationError{Field: "amount", Reason: "must be a positive number no greater than 999999.99"}
	}
	if err := s.validate.Struct(input); err != nil {
		return "", validation.ToValidationError(err)
	}

	url, err := s.provider.CreateCheckoutSession(ctx, domain.CheckoutSession{
		AmountMinor:   amountMinor,
		Currency:      s.settings.Currency,
		ProductName:   productNamePrefix + input.Name,
		CustomerEmail: input.Email,
		SuccessURL:    s.settings.SuccessURL,
		CancelURL:     s.settings.CancelURL,
	})
	if err != nil {
		s.logger.Error("failed to create checkout session",
			zap.String("email", input.Email),
			zap.Error(err))
		return "", &domain.PaymentProviderError{Err: err}
	}
	return url, nil
}

// toMinorUnits converts a major-unit amount to cents, rounding half away
// from zero at two decimal places. It reports false for amounts outside
// 1..maxAmountMinor cents.
func toMinorUnits(amount decimal.Decimal) (int64, bool) {
	minor := amount.Round(2).Shift(2)
	if !minor.IsPositive() || minor.GreaterThan(decimal.NewFromInt(maxAmountMinor)) {
		return 0, false
	}
	return minor.IntPart(), true
}

var _ CheckoutUseCase = (*CheckoutService)(nil)
