package stripewebhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"social-app/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

const testSecret = "whsec_test_secret"

func newWebhookRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook", h.HandleWebhook)
	return r
}

// signPayload builds a Stripe-Signature header over payload: the provider
// signs "<timestamp>.<payload>" with HMAC-SHA256.
func signPayload(secret, payload string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func deliver(r http.Handler, payload, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func deliverSigned(r http.Handler, payload string) *httptest.ResponseRecorder {
	return deliver(r, payload, signPayload(testSecret, payload, time.Now()))
}

func sessionCompletedEvent(chargeID string) string {
	return fmt.Sprintf(`{"id":"evt_1","object":"event","api_version":"2023-08-16","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","payment_intent":%q}}}`, chargeID)
}

func paymentFailedEvent(chargeID string) string {
	return fmt.Sprintf(`{"id":"evt_2","object":"event","api_version":"2023-08-16","type":"payment_intent.payment_failed","data":{"object":{"id":%q,"object":"payment_intent"}}}`, chargeID)
}

func seedPending(t *testing.T, store *memStore, chargeID string) {
	t.Helper()
	store.recs[chargeID] = &payments.PaymentRecord{
		ChargeID: chargeID,
		OwnerID:  1,
		Status:   payments.StatusPending,
	}
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_123")
	r := newWebhookRouter(NewHandler(testSecret, store))

	payload := sessionCompletedEvent("pi_123")
	w := deliver(r, payload, signPayload("whsec_wrong", payload, time.Now()))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := store.status("pi_123"); got != payments.StatusPending {
		t.Errorf("record mutated to %s by an unauthenticated event", got)
	}
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_123")
	r := newWebhookRouter(NewHandler(testSecret, store))

	w := deliver(r, sessionCompletedEvent("pi_123"), "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := store.status("pi_123"); got != payments.StatusPending {
		t.Errorf("record mutated to %s", got)
	}
}

func TestWebhookAppliesSucceeded(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_123")
	r := newWebhookRouter(NewHandler(testSecret, store))

	w := deliverSigned(r, sessionCompletedEvent("pi_123"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, `"received":true`) {
		t.Errorf("body = %s", body)
	}
	if got := store.status("pi_123"); got != payments.StatusSucceeded {
		t.Errorf("status = %s, want succeeded", got)
	}
}

func TestWebhookAppliesFailed(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_456")
	r := newWebhookRouter(NewHandler(testSecret, store))

	w := deliverSigned(r, paymentFailedEvent("pi_456"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := store.status("pi_456"); got != payments.StatusFailed {
		t.Errorf("status = %s, want failed", got)
	}
}

func TestWebhookReplayIsIdempotent(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_123")
	r := newWebhookRouter(NewHandler(testSecret, store))

	for i := 0; i < 2; i++ {
		w := deliverSigned(r, sessionCompletedEvent("pi_123"))
		if w.Code != http.StatusOK {
			t.Fatalf("delivery %d: status = %d", i+1, w.Code)
		}
	}
	if got := store.status("pi_123"); got != payments.StatusSucceeded {
		t.Errorf("status = %s, want succeeded", got)
	}
}

func TestWebhookKeepsFirstTerminalState(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_123")
	r := newWebhookRouter(NewHandler(testSecret, store))

	if w := deliverSigned(r, sessionCompletedEvent("pi_123")); w.Code != http.StatusOK {
		t.Fatalf("succeeded delivery: status = %d", w.Code)
	}

	// A late conflicting failure is acknowledged but must not win.
	w := deliverSigned(r, paymentFailedEvent("pi_123"))
	if w.Code != http.StatusOK {
		t.Fatalf("failed delivery: status = %d", w.Code)
	}
	if got := store.status("pi_123"); got != payments.StatusSucceeded {
		t.Errorf("status = %s, want succeeded", got)
	}
}

func TestWebhookUnknownChargeIsAcknowledged(t *testing.T) {
	store := newMemStore()
	r := newWebhookRouter(NewHandler(testSecret, store))

	w := deliverSigned(r, sessionCompletedEvent("pi_never_seen"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestWebhookIgnoresUnrelatedEvents(t *testing.T) {
	store := newMemStore()
	seedPending(t, store, "pi_123")
	r := newWebhookRouter(NewHandler(testSecret, store))

	payload := `{"id":"evt_3","object":"event","api_version":"2023-08-16","type":"invoice.paid","data":{"object":{"id":"in_1","object":"invoice"}}}`
	w := deliverSigned(r, payload)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := store.status("pi_123"); got != payments.StatusPending {
		t.Errorf("unrelated event mutated record to %s", got)
	}
}
