package payments

import (
	"time"

	"social-app/internal/domain/users"
)

// PaymentRecord is the local source of truth for one charge attempt.
// ChargeID is issued by the payment provider before the record is persisted
// and is the only key webhooks reconcile against.
type PaymentRecord struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ChargeID    string      `gorm:"column:charge_id;not null;uniqueIndex:idx_payments_charge_id" json:"chargeId"`
	OwnerID     uint        `gorm:"column:owner_id;not null;index:idx_payments_owner_id" json:"ownerId"`
	Owner       *users.User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Amount      int64       `json:"amount"`
	Currency    string      `gorm:"type:varchar(10)" json:"currency"`
	Plan        int         `json:"plan"`
	CheckoutURL string      `gorm:"column:checkout_url" json:"checkoutUrl"`
	Status      Status      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (PaymentRecord) TableName() string {
	return "payments"
}
