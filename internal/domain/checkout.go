package domain

// CheckoutSession describes a hosted payment session to create. Amount is in
// the provider's minor currency unit.
type CheckoutSession struct {
	AmountMinor   int64
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}
