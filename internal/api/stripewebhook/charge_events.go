package stripewebhooks

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"social-app/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func chargeIDFromSession(raw json.RawMessage) string {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return ""
	}
	if session.PaymentIntent == nil {
		return ""
	}
	return session.PaymentIntent.ID
}

func chargeIDFromIntent(raw json.RawMessage) string {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return ""
	}
	return intent.ID
}

// handleChargeEvent applies one provider-driven transition. Deliveries are
// at-least-once and may arrive out of order, so every outcome except a store
// failure is acknowledged with 200: a retry of an already-processed event
// must not look like an error to the provider.
func (h *Handler) handleChargeEvent(c *gin.Context, eventType, chargeID string, target payments.Status) {
	if chargeID == "" {
		log.Printf("⚠️ webhook %s carried no charge id, ignoring", eventType)
		eventsTotal.WithLabelValues(eventType, "malformed").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	ctx := c.Request.Context()

	applied, err := h.store.Transition(ctx, chargeID, payments.StatusPending, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	outcome := "applied"
	if !applied {
		outcome = h.classifyNoop(c, eventType, chargeID, target)
		if outcome == "" {
			return
		}
	} else {
		log.Printf("✅ payment %s → %s", chargeID, target)
	}

	eventsTotal.WithLabelValues(eventType, outcome).Inc()
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// classifyNoop distinguishes why a compare-and-set did not apply: the charge
// may be unknown here (replay after data loss), the event may be a duplicate
// of the state already recorded, or a late event may conflict with a terminal
// state that stays authoritative. Returns "" after writing an error response.
func (h *Handler) classifyNoop(c *gin.Context, eventType, chargeID string, target payments.Status) string {
	rec, err := h.store.ByChargeID(c.Request.Context(), chargeID)
	if err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			log.Printf("⚠️ webhook %s for unknown charge %s", eventType, chargeID)
			return "unknown_charge"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		return ""
	}

	if rec.Status == target {
		return "replay"
	}

	log.Printf("⚠️ conflicting event %s for charge %s: status is %s, event wanted %s — keeping first terminal state",
		eventType, chargeID, rec.Status, target)
	return "conflict"
}
