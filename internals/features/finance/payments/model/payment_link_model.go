// file: internals/features/finance/payments/model/payment_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentLinkStatus string

const (
	PaymentLinkStatusPending  PaymentLinkStatus = "pending"
	PaymentLinkStatusPaid     PaymentLinkStatus = "paid"
	PaymentLinkStatusExpired  PaymentLinkStatus = "expired"
	PaymentLinkStatusCanceled PaymentLinkStatus = "canceled"
	PaymentLinkStatusFailed   PaymentLinkStatus = "failed"
)

func (s PaymentLinkStatus) IsTerminal() bool {
	return s != PaymentLinkStatusPending
}

/* ==============================================
   PAYMENT LINK — a Snap checkout issued for an
   admission. When the gateway reports payment,
   the webhook stages a pending fee submission;
   money still settles through normal review.
============================================== */

type PaymentLinkModel struct {
	// PK
	PaymentLinkID uuid.UUID `gorm:"column:payment_link_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_link_id"`

	// FK
	PaymentLinkAdmissionID uuid.UUID `gorm:"column:payment_link_admission_id;type:uuid;not null;index" json:"payment_link_admission_id"`

	// Gateway order id (unique, used as Snap OrderID)
	PaymentLinkOrderID string `gorm:"column:payment_link_order_id;type:varchar(64);not null;uniqueIndex" json:"payment_link_order_id"`

	PaymentLinkAmount decimal.Decimal `gorm:"column:payment_link_amount;type:numeric(14,2);not null" json:"payment_link_amount"`

	PaymentLinkSnapToken   *string `gorm:"column:payment_link_snap_token;type:text" json:"payment_link_snap_token,omitempty"`
	PaymentLinkRedirectURL *string `gorm:"column:payment_link_redirect_url;type:text" json:"payment_link_redirect_url,omitempty"`

	PaymentLinkStatus       PaymentLinkStatus `gorm:"column:payment_link_status;type:varchar(20);not null;default:'pending';index" json:"payment_link_status"`
	PaymentLinkGatewayTxnID *string           `gorm:"column:payment_link_gateway_txn_id;type:varchar(120)" json:"payment_link_gateway_txn_id,omitempty"`
	PaymentLinkPaidAt       *time.Time        `gorm:"column:payment_link_paid_at;type:timestamptz" json:"payment_link_paid_at,omitempty"`
	PaymentLinkSubmissionID *uuid.UUID        `gorm:"column:payment_link_submission_id;type:uuid" json:"payment_link_submission_id,omitempty"`

	PaymentLinkCreatedBy *uuid.UUID `gorm:"column:payment_link_created_by;type:uuid" json:"payment_link_created_by,omitempty"`

	// Audit
	PaymentLinkCreatedAt time.Time `gorm:"column:payment_link_created_at;type:timestamptz;not null;default:now();index" json:"payment_link_created_at"`
	PaymentLinkUpdatedAt time.Time `gorm:"column:payment_link_updated_at;type:timestamptz;not null;default:now()" json:"payment_link_updated_at"`
}

func (PaymentLinkModel) TableName() string { return "payment_links" }

func (m *PaymentLinkModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PaymentLinkStatus == "" {
		m.PaymentLinkStatus = PaymentLinkStatusPending
	}
	if m.PaymentLinkCreatedAt.IsZero() {
		m.PaymentLinkCreatedAt = now
	}
	m.PaymentLinkUpdatedAt = now
	return nil
}

func (m *PaymentLinkModel) BeforeUpdate(tx *gorm.DB) error {
	m.PaymentLinkUpdatedAt = time.Now()
	return nil
}
