package payments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("payment record not found")
	ErrDuplicateCharge = errors.New("duplicate charge id")
)

// Store persists payment records. All mutation goes through Create,
// Transition, and Complete; concurrent webhook deliveries for the same
// charge are serialized by the conditional UPDATE in Transition.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// PageResult mirrors the paginated listing shape of the public API.
type PageResult struct {
	Docs       []PaymentRecord `json:"docs"`
	TotalDocs  int64           `json:"totalDocs"`
	Limit      int             `json:"limit"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

func (s *Store) Create(ctx context.Context, rec *PaymentRecord) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCharge
		}
		return fmt.Errorf("create payment record: %w", err)
	}
	return nil
}

func (s *Store) ByChargeID(ctx context.Context, chargeID string) (*PaymentRecord, error) {
	var rec PaymentRecord
	err := s.db.WithContext(ctx).Where("charge_id = ?", chargeID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load payment record: %w", err)
	}
	return &rec, nil
}

func (s *Store) ByOwner(ctx context.Context, ownerID uint) ([]PaymentRecord, error) {
	var recs []PaymentRecord
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("load payments for owner %d: %w", ownerID, err)
	}
	return recs, nil
}

// Page lists all records newest first with the owner denormalized in.
func (s *Store) Page(ctx context.Context, page, limit int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&PaymentRecord{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count payment records: %w", err)
	}

	var recs []PaymentRecord
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("page payment records: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PageResult{
		Docs:       recs,
		TotalDocs:  total,
		Limit:      limit,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Transition performs a compare-and-set on status: the update applies only
// when the stored status still equals from. Returns false without error when
// the guard did not match, so a stale or replayed event can never overwrite
// a terminal state written by an earlier delivery.
func (s *Store) Transition(ctx context.Context, chargeID string, from, to Status) (bool, error) {
	if !CanTransition(from, to) {
		return false, nil
	}
	res := s.db.WithContext(ctx).
		Model(&PaymentRecord{}).
		Where("charge_id = ? AND status = ?", chargeID, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("transition %s %s→%s: %w", chargeID, from, to, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Complete is the administrative override: it forces completed regardless of
// the current status. Only absence of the record is an error.
func (s *Store) Complete(ctx context.Context, chargeID string) error {
	res := s.db.WithContext(ctx).
		Model(&PaymentRecord{}).
		Where("charge_id = ?", chargeID).
		Update("status", StatusCompleted)
	if res.Error != nil {
		return fmt.Errorf("complete %s: %w", chargeID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
