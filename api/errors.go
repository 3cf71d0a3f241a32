package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/Domenick1991/reserva-backend/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const validationMessage = "Missing required fields"

var errInvalidBody = &domain.ValidationError{Field: "body", Reason: "must be a valid JSON object"}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondError writes the error response for err and returns the metrics
// outcome it was classified as. message is used for every non-client error.
func respondError(c *gin.Context, logger *zap.Logger, message string, err error) string {
	status, outcome := classify(err)

	if status == http.StatusBadRequest {
		message = validationMessage
		logger.Info("rejected request",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	} else {
		logger.Error(message,
			zap.String("path", c.FullPath()),
			zap.String("outcome", outcome),
			zap.Error(err))
	}

	c.JSON(status, errorResponse{Error: message, Details: err.Error()})
	return outcome
}

func classify(err error) (int, string) {
	var (
		validationErr  *domain.ValidationError
		persistenceErr *domain.PersistenceError
		mailErr        *domain.MailDeliveryError
		paymentErr     *domain.PaymentProviderError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, metrics.OutcomeValidation
	case errors.As(err, &mailErr):
		return http.StatusInternalServerError, metrics.OutcomeMail
	case errors.As(err, &persistenceErr):
		return http.StatusInternalServerError, metrics.OutcomePersistence
	case errors.As(err, &paymentErr):
		return http.StatusInternalServerError, metrics.OutcomePayment
	default:
		return http.StatusInternalServerError, metrics.OutcomeInternal
	}
}
