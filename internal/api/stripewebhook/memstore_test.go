package stripewebhooks

import (
	"context"
	"sync"

	"social-app/internal/domain/payments"
)

// memStore is an in-memory payment record store with the same
// compare-and-set semantics as the real one. It satisfies both this
// package's RecordStore and the billing handlers' store interface, so flow
// tests can drive checkout and reconciliation against shared state.
type memStore struct {
	mu   sync.Mutex
	recs map[string]*payments.PaymentRecord
}

func newMemStore() *memStore {
	return &memStore{recs: make(map[string]*payments.PaymentRecord)}
}

func (s *memStore) Create(ctx context.Context, rec *payments.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[rec.ChargeID]; ok {
		return payments.ErrDuplicateCharge
	}
	cp := *rec
	s.recs[rec.ChargeID] = &cp
	return nil
}

func (s *memStore) ByChargeID(ctx context.Context, chargeID string) (*payments.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[chargeID]
	if !ok {
		return nil, payments.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *memStore) Transition(ctx context.Context, chargeID string, from, to payments.Status) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !payments.CanTransition(from, to) {
		return false, nil
	}
	rec, ok := s.recs[chargeID]
	if !ok || rec.Status != from {
		return false, nil
	}
	rec.Status = to
	return true, nil
}

func (s *memStore) Complete(ctx context.Context, chargeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[chargeID]
	if !ok {
		return payments.ErrNotFound
	}
	rec.Status = payments.StatusCompleted
	return nil
}

func (s *memStore) ByOwner(ctx context.Context, ownerID uint) ([]payments.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []payments.PaymentRecord
	for _, rec := range s.recs {
		if rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *memStore) Page(ctx context.Context, page, limit int) (*payments.PageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var docs []payments.PaymentRecord
	for _, rec := range s.recs {
		docs = append(docs, *rec)
	}
	return &payments.PageResult{
		Docs:       docs,
		TotalDocs:  int64(len(docs)),
		Limit:      limit,
		Page:       page,
		TotalPages: 1,
	}, nil
}

func (s *memStore) status(chargeID string) payments.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.recs[chargeID]; ok {
		return rec.Status
	}
	return ""
}
