package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/reserva-backend/internal/metrics"
	"github.com/Domenick1991/reserva-backend/internal/service/checkout"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service checkout.CheckoutUseCase
	logger  *zap.Logger
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func NewCheckoutHandler(service checkout.CheckoutUseCase, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: service, logger: logger}
}

func (h *CheckoutHandler) Register(router *gin.RouterGroup) {
	router.POST("/checkout", h.create)
}

func (h *CheckoutHandler) create(c *gin.Context) {
	var input checkout.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		metrics.CheckoutRequests.WithLabelValues(
			respondError(c, h.logger, "", fmt.Errorf("%w: %v", errInvalidBody, err)),
		).Inc()
		return
	}

	url, err := h.service.CreateCheckout(c.Request.Context(), input)
	if err != nil {
		metrics.CheckoutRequests.WithLabelValues(
			respondError(c, h.logger, "Failed to create checkout", err),
		).Inc()
		return
	}

	metrics.CheckoutRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	c.JSON(http.StatusOK, checkoutResponse{URL: url})
}
