package stripewebhooks

import (
	"context"
	"io"
	"net/http"

	"social-app/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stripe/stripe-go/v75/webhook"
)

// Metrics
var (
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events_total",
		Help: "Provider webhook events by type and reconciliation outcome",
	}, []string{"type", "outcome"})

	signatureFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webhook_signature_failures_total",
		Help: "Webhook deliveries rejected at the signature check",
	})
)

// RecordStore is the slice of the payment store the reconciler needs.
type RecordStore interface {
	Transition(ctx context.Context, chargeID string, from, to payments.Status) (bool, error)
	ByChargeID(ctx context.Context, chargeID string) (*payments.PaymentRecord, error)
}

// Handler reconciles asynchronous provider notifications against local
// payment records. The signing secret and store are bound at construction.
type Handler struct {
	secret string
	store  RecordStore
}

func NewHandler(signingSecret string, store RecordStore) *Handler {
	return &Handler{secret: signingSecret, store: store}
}

// HandleWebhook is the provider-facing endpoint. The body must arrive raw:
// signature verification runs over the exact bytes the provider signed, so
// no middleware may parse or rewrite this request.
func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := readRawBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		signatureFailures.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		h.handleChargeEvent(c, string(event.Type), chargeIDFromSession(event.Data.Raw), payments.StatusSucceeded)

	case "payment_intent.payment_failed":
		h.handleChargeEvent(c, string(event.Type), chargeIDFromIntent(event.Data.Raw), payments.StatusFailed)

	default:
		// Unrelated events are acknowledged so the provider stops retrying.
		eventsTotal.WithLabelValues(string(event.Type), "ignored").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func readRawBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
