package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/reserva-backend/internal/metrics"
	"github.com/Domenick1991/reserva-backend/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	bookingConfirmedMessage = "Booking confirmed and email sent!"
	healthMessageFormat     = "Connection OK! %d bookings found."
)

type BookingHandler struct {
	service booking.BookingUseCase
	logger  *zap.Logger
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

func NewBookingHandler(service booking.BookingUseCase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/reserva", h.create)
	router.GET("/ver-reservas", h.list)
	router.GET("/teste-mongo", h.health)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		metrics.BookingRequests.WithLabelValues(
			respondError(c, h.logger, "", fmt.Errorf("%w: %v", errInvalidBody, err)),
		).Inc()
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		metrics.BookingRequests.WithLabelValues(
			respondError(c, h.logger, "Failed to process booking", err),
		).Inc()
		return
	}

	h.logger.Info("booking created",
		zap.String("id", created.ID),
		zap.String("email", created.Email))
	metrics.BookingRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	c.JSON(http.StatusOK, messageResponse{Message: bookingConfirmedMessage})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		metrics.BookingQueries.WithLabelValues("list",
			respondError(c, h.logger, "Failed to fetch bookings", err),
		).Inc()
		return
	}
	metrics.BookingQueries.WithLabelValues("list", metrics.OutcomeOK).Inc()
	c.JSON(http.StatusOK, bookings)
}

// health doubles as a store connectivity probe.
func (h *BookingHandler) health(c *gin.Context) {
	count, err := h.service.CountBookings(c.Request.Context())
	if err != nil {
		metrics.BookingQueries.WithLabelValues("health",
			respondError(c, h.logger, "Database connection failed", err),
		).Inc()
		return
	}
	metrics.BookingQueries.WithLabelValues("health", metrics.OutcomeOK).Inc()
	c.JSON(http.StatusOK, healthResponse{
		Message: fmt.Sprintf(healthMessageFormat, count),
		Count:   count,
	})
}
