package api

import (
	"errors"
	"io"
	"net/http"

	"ideagate/internal/handler/httperr"
	"ideagate/internal/handler/middleware"
	"ideagate/internal/pkg/errs"
	"ideagate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the processor's HMAC over the raw body.
const SignatureHeader = "Payment-Signature"

const maxWebhookBodyBytes = 1 << 20 // processor payloads are small; cap reads

type WebhookHandler struct {
	cmds commands.PaymentCommands
}

func NewWebhookHandler(cmds commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Card payment webhook
// @Description Signed event deliveries from the card processor
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Payment-Signature header string true "HMAC signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/payments [post]
func (h *WebhookHandler) HandleCardEvent(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read body", nil)
		return
	}

	result, err := h.cmds.HandleCardEvent(c.Request.Context(), payload, c.GetHeader(SignatureHeader))
	if err != nil {
		// Signature and parse failures are the only non-200 answers; the
		// processor retries those, everything else must be acked to stop
		// redelivery.
		switch {
		case errors.Is(err, errs.ErrInvalidSignature):
			middleware.WebhookEventsTotal.WithLabelValues("unknown", "invalid_signature").Inc()
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		case errors.Is(err, errs.ErrMalformedEvent):
			middleware.WebhookEventsTotal.WithLabelValues("unknown", "malformed").Inc()
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed event", nil)
		default:
			// Transient storage failure: non-200 so the provider's own retry
			// redelivers later.
			middleware.WebhookEventsTotal.WithLabelValues("unknown", "storage_error").Inc()
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	middleware.WebhookEventsTotal.WithLabelValues(result.EventType, string(result.Outcome)).Inc()
	c.JSON(http.StatusOK, gin.H{"received": "true", "outcome": string(result.Outcome)})
}
