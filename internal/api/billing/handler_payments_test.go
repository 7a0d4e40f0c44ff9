package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-app/internal/domain/payments"
)

func getPath(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentStatus(t *testing.T) {
	store := &mockStore{
		ByChargeIDFunc: func(ctx context.Context, chargeID string) (*payments.PaymentRecord, error) {
			if chargeID == "pi_known" {
				return &payments.PaymentRecord{ChargeID: chargeID, Status: payments.StatusSucceeded}, nil
			}
			return nil, payments.ErrNotFound
		},
	}
	r := newTestRouter(NewHandler(&mockGateway{}, store), 7)

	w := getPath(r, "/payments/status?chargeId=pi_known")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "succeeded" {
		t.Errorf("status = %q", resp.Status)
	}

	if w := getPath(r, "/payments/status?chargeId=pi_unknown"); w.Code != http.StatusNotFound {
		t.Errorf("unknown charge: status = %d, want 404", w.Code)
	}
	if w := getPath(r, "/payments/status"); w.Code != http.StatusBadRequest {
		t.Errorf("missing chargeId: status = %d, want 400", w.Code)
	}
}

func TestMyPaymentsEmpty(t *testing.T) {
	store := &mockStore{
		ByOwnerFunc: func(ctx context.Context, ownerID uint) ([]payments.PaymentRecord, error) {
			return nil, nil
		},
	}
	r := newTestRouter(NewHandler(&mockGateway{}, store), 7)

	if w := getPath(r, "/payments/my"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAllPaymentsDefaults(t *testing.T) {
	var gotPage, gotLimit int
	store := &mockStore{
		PageFunc: func(ctx context.Context, page, limit int) (*payments.PageResult, error) {
			gotPage, gotLimit = page, limit
			return &payments.PageResult{
				Docs:       []payments.PaymentRecord{{ChargeID: "pi_1"}},
				TotalDocs:  1,
				Limit:      limit,
				Page:       page,
				TotalPages: 1,
			}, nil
		},
	}
	r := newTestRouter(NewHandler(&mockGateway{}, store), 7)

	w := getPath(r, "/admin/payments")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotPage != 1 || gotLimit != 10 {
		t.Errorf("defaults: page=%d limit=%d, want 1/10", gotPage, gotLimit)
	}

	if w := getPath(r, "/admin/payments?page=0"); w.Code != http.StatusBadRequest {
		t.Errorf("page=0: status = %d, want 400", w.Code)
	}
	if w := getPath(r, "/admin/payments?limit=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("limit=abc: status = %d, want 400", w.Code)
	}
}

func TestCompletePayment(t *testing.T) {
	store := &mockStore{
		CompleteFunc: func(ctx context.Context, chargeID string) error {
			if chargeID == "pi_known" {
				return nil
			}
			return payments.ErrNotFound
		},
	}
	r := newTestRouter(NewHandler(&mockGateway{}, store), 7)

	if w := postJSON(r, "/admin/payments/pi_known/complete", ""); w.Code != http.StatusOK {
		t.Errorf("known charge: status = %d, want 200", w.Code)
	}
	if w := postJSON(r, "/admin/payments/pi_unknown/complete", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown charge: status = %d, want 404", w.Code)
	}
}
