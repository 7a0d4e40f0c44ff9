package billing

import (
	"context"
	"errors"

	"social-app/internal/domain/payments"
	stripegw "social-app/internal/infra/stripe"
)

var errMockGateway = errors.New("gateway unavailable")

// mockGateway implements ChargeCreator for handler tests.
type mockGateway struct {
	CreateChargeFunc func(ctx context.Context, amount int64, currency string, meta stripegw.ChargeMetadata) (*stripegw.ChargeResult, error)
	calls            int
}

func (m *mockGateway) CreateCharge(ctx context.Context, amount int64, currency string, meta stripegw.ChargeMetadata) (*stripegw.ChargeResult, error) {
	m.calls++
	if m.CreateChargeFunc != nil {
		return m.CreateChargeFunc(ctx, amount, currency, meta)
	}
	return &stripegw.ChargeResult{ChargeID: "pi_mock", Status: "requires_payment_method"}, nil
}

// mockStore implements RecordStore for handler tests.
type mockStore struct {
	CreateFunc     func(ctx context.Context, rec *payments.PaymentRecord) error
	ByChargeIDFunc func(ctx context.Context, chargeID string) (*payments.PaymentRecord, error)
	ByOwnerFunc    func(ctx context.Context, ownerID uint) ([]payments.PaymentRecord, error)
	PageFunc       func(ctx context.Context, page, limit int) (*payments.PageResult, error)
	CompleteFunc   func(ctx context.Context, chargeID string) error

	created []payments.PaymentRecord
}

func (m *mockStore) Create(ctx context.Context, rec *payments.PaymentRecord) error {
	m.created = append(m.created, *rec)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	return nil
}

func (m *mockStore) ByChargeID(ctx context.Context, chargeID string) (*payments.PaymentRecord, error) {
	if m.ByChargeIDFunc != nil {
		return m.ByChargeIDFunc(ctx, chargeID)
	}
	return nil, payments.ErrNotFound
}

func (m *mockStore) ByOwner(ctx context.Context, ownerID uint) ([]payments.PaymentRecord, error) {
	if m.ByOwnerFunc != nil {
		return m.ByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockStore) Page(ctx context.Context, page, limit int) (*payments.PageResult, error) {
	if m.PageFunc != nil {
		return m.PageFunc(ctx, page, limit)
	}
	return &payments.PageResult{Page: page, Limit: limit}, nil
}

func (m *mockStore) Complete(ctx context.Context, chargeID string) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, chargeID)
	}
	return payments.ErrNotFound
}
