// file: internals/features/finance/submissions/model/fee_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUMS
============================== */

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeCheque       PaymentMode = "cheque"
	PaymentModeOnline       PaymentMode = "online"
	PaymentModeGateway      PaymentMode = "gateway"
)

/* ==============================================
   FEE SUBMISSION — a claim that money arrived
   for an admission. Creating one moves nothing;
   balances change only when a reviewer approves
   it and the settlement transaction commits.
============================================== */

type FeeSubmissionModel struct {
	// PK
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`

	// FK
	SubmissionAdmissionID uuid.UUID `gorm:"column:submission_admission_id;type:uuid;not null;index" json:"submission_admission_id"`

	SubmissionAmountReceived decimal.Decimal `gorm:"column:submission_amount_received;type:numeric(14,2);not null" json:"submission_amount_received"`
	SubmissionPaymentMode    PaymentMode     `gorm:"column:submission_payment_mode;type:varchar(20);not null" json:"submission_payment_mode"`
	SubmissionPaymentDate    time.Time       `gorm:"column:submission_payment_date;type:timestamptz;not null" json:"submission_payment_date"`
	SubmissionTransactionID  *string         `gorm:"column:submission_transaction_id;type:varchar(120)" json:"submission_transaction_id,omitempty"`

	SubmissionProofURLs pq.StringArray `gorm:"column:submission_proof_urls;type:text[]" json:"submission_proof_urls,omitempty"`
	SubmissionNotes     *string        `gorm:"column:submission_notes;type:text" json:"submission_notes,omitempty"`

	// Review
	SubmissionStatus          SubmissionStatus `gorm:"column:submission_status;type:varchar(20);not null;default:'pending';index" json:"submission_status"`
	SubmissionRejectionReason *string          `gorm:"column:submission_rejection_reason;type:text" json:"submission_rejection_reason,omitempty"`
	SubmissionReviewedBy      *uuid.UUID       `gorm:"column:submission_reviewed_by;type:uuid" json:"submission_reviewed_by,omitempty"`
	SubmissionReviewedAt      *time.Time       `gorm:"column:submission_reviewed_at;type:timestamptz" json:"submission_reviewed_at,omitempty"`

	// Split snapshot written at approval (audit trail; ledger is authoritative)
	SubmissionUniversityFee     *decimal.Decimal `gorm:"column:submission_university_fee;type:numeric(14,2)" json:"submission_university_fee,omitempty"`
	SubmissionAgentCommission   *decimal.Decimal `gorm:"column:submission_agent_commission;type:numeric(14,2)" json:"submission_agent_commission,omitempty"`
	SubmissionConsultancyProfit *decimal.Decimal `gorm:"column:submission_consultancy_profit;type:numeric(14,2)" json:"submission_consultancy_profit,omitempty"`

	SubmissionSubmittedBy *uuid.UUID `gorm:"column:submission_submitted_by;type:uuid" json:"submission_submitted_by,omitempty"`

	// Audit
	SubmissionCreatedAt time.Time `gorm:"column:submission_created_at;type:timestamptz;not null;default:now();index" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"column:submission_updated_at;type:timestamptz;not null;default:now()" json:"submission_updated_at"`
}

func (FeeSubmissionModel) TableName() string { return "fee_submissions" }

func (m *FeeSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SubmissionStatus == "" {
		m.SubmissionStatus = SubmissionStatusPending
	}
	if m.SubmissionPaymentDate.IsZero() {
		m.SubmissionPaymentDate = now
	}
	if m.SubmissionCreatedAt.IsZero() {
		m.SubmissionCreatedAt = now
	}
	m.SubmissionUpdatedAt = now
	return nil
}

func (m *FeeSubmissionModel) BeforeUpdate(tx *gorm.DB) error {
	m.SubmissionUpdatedAt = time.Now()
	return nil
}
