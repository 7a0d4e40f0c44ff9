package billing

import (
	"context"
	"net/http"
	"time"

	"social-app/internal/domain/payments"
	"social-app/internal/domain/plans"
	stripegw "social-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var checkoutsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "checkouts_created_total",
	Help: "Charges created against the payment provider, by plan",
}, []string{"plan"})

// ChargeCreator is the outbound provider dependency of the checkout path.
type ChargeCreator interface {
	CreateCharge(ctx context.Context, amount int64, currency string, meta stripegw.ChargeMetadata) (*stripegw.ChargeResult, error)
}

// RecordStore is the slice of the payment store the billing handlers need.
type RecordStore interface {
	Create(ctx context.Context, rec *payments.PaymentRecord) error
	ByChargeID(ctx context.Context, chargeID string) (*payments.PaymentRecord, error)
	ByOwner(ctx context.Context, ownerID uint) ([]payments.PaymentRecord, error)
	Page(ctx context.Context, page, limit int) (*payments.PageResult, error)
	Complete(ctx context.Context, chargeID string) error
}

// Handler serves the checkout initiator and the payment query surface.
// Gateway and store are injected at construction.
type Handler struct {
	gateway ChargeCreator
	store   RecordStore
}

func NewHandler(gateway ChargeCreator, store RecordStore) *Handler {
	return &Handler{gateway: gateway, store: store}
}

const gatewayTimeout = 15 * time.Second

// CreateCheckout validates the request, creates the remote charge, and only
// then writes the local record in pending state. A gateway failure leaves no
// local trace; the caller retries and a fresh charge is created.
func (h *Handler) CreateCheckout(c *gin.Context) {
	var body struct {
		Amount   *int64  `json:"amount"`
		Currency *string `json:"currency"`
		Plan     *int    `json:"plan"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if body.Amount == nil || *body.Amount <= 0 ||
		body.Currency == nil || *body.Currency == "" ||
		body.Plan == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount, currency and plan are required"})
		return
	}

	plan, ok := plans.ByCode(*body.Plan)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
	defer cancel()

	result, err := h.gateway.CreateCharge(ctx, *body.Amount, *body.Currency, stripegw.ChargeMetadata{
		OwnerID: userID,
		Plan:    plan.Code,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment couldn't be created with the provider"})
		return
	}

	// A fresh intent normalizes to pending; anything the provider already
	// settled is recorded as-is so reconciliation never walks it backwards.
	rec := payments.PaymentRecord{
		ChargeID:    result.ChargeID,
		OwnerID:     userID,
		Amount:      *body.Amount,
		Currency:    *body.Currency,
		Plan:        plan.Code,
		CheckoutURL: plan.CheckoutURL,
		Status:      payments.Status(stripegw.NormalizeIntentStatus(result.Status)),
	}
	if err := h.store.Create(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	checkoutsCreated.WithLabelValues(plan.Name).Inc()

	// Internal record fields stay internal; the caller gets what it needs
	// to send the user to checkout and poll for status.
	c.JSON(http.StatusCreated, gin.H{
		"chargeId":    rec.ChargeID,
		"checkoutUrl": rec.CheckoutURL,
	})
}
