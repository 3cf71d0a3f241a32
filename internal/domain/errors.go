package domain

import "fmt"

// ValidationError is a client-caused failure; it never reaches a collaborator.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("field %q is required", e.Field)
	}
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MailDeliveryError is only produced after the booking was stored, so the
// record exists even though the caller sees a failure.
type MailDeliveryError struct {
	Recipient string
	Err       error
}

func (e *MailDeliveryError) Error() string {
	return fmt.Sprintf("send confirmation to %s: %v", e.Recipient, e.Err)
}

func (e *MailDeliveryError) Unwrap() error { return e.Err }

type PaymentProviderError struct {
	Err error
}

func (e *PaymentProviderError) Error() string {
	return e.Err.Error()
}

func (e *PaymentProviderError) Unwrap() error { return e.Err }
