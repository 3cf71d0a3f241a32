package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK          = "ok"
	OutcomeValidation  = "validation"
	OutcomePersistence = "persistence"
	OutcomeMail        = "mail"
	OutcomePayment     = "payment"
	OutcomeInternal    = "internal"
)

var (
	BookingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_requests_total",
		Help: "Booking submissions by outcome.",
	}, []string{"outcome"})

	CheckoutRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_requests_total",
		Help: "Checkout session requests by outcome.",
	}, []string{"outcome"})

	BookingQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_queries_total",
		Help: "Listing and health queries by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
)
