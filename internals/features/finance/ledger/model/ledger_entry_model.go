// file: internals/features/finance/ledger/model/ledger_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUMS
============================== */

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type LedgerPurpose string

const (
	PurposeAdmissionFee     LedgerPurpose = "admission_fee"
	PurposeCommission       LedgerPurpose = "commission"
	PurposeManualAdjustment LedgerPurpose = "manual_adjustment"
	PurposeRefund           LedgerPurpose = "refund"
	PurposeBonus            LedgerPurpose = "bonus"
	PurposePenalty          LedgerPurpose = "penalty"
)

var ledgerPurposes = map[LedgerPurpose]struct{}{
	PurposeAdmissionFee:     {},
	PurposeCommission:       {},
	PurposeManualAdjustment: {},
	PurposeRefund:           {},
	PurposeBonus:            {},
	PurposePenalty:          {},
}

func IsLedgerPurpose(p LedgerPurpose) bool {
	_, ok := ledgerPurposes[p]
	return ok
}

/* ==============================================
   LEDGER ENTRY — append only. No update, no
   delete, no soft delete. Balances are derived
   by summing entries, never stored.
============================================== */

type LedgerEntryModel struct {
	// PK
	LedgerEntryID uuid.UUID `gorm:"column:ledger_entry_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"ledger_entry_id"`

	// Wallet owner
	LedgerEntityID   uuid.UUID `gorm:"column:ledger_entity_id;type:uuid;not null;index:idx_ledger_entity,priority:2" json:"ledger_entity_id"`
	LedgerEntityType string    `gorm:"column:ledger_entity_type;type:varchar(20);not null;index:idx_ledger_entity,priority:1" json:"ledger_entity_type"` // university|consultancy|agent|system

	LedgerTransactionType TransactionType `gorm:"column:ledger_transaction_type;type:varchar(10);not null" json:"ledger_transaction_type"`
	LedgerAmount          decimal.Decimal `gorm:"column:ledger_amount;type:numeric(14,2);not null" json:"ledger_amount"` // always > 0; sign comes from transaction_type
	LedgerPurpose         LedgerPurpose   `gorm:"column:ledger_purpose;type:varchar(30);not null;index" json:"ledger_purpose"`

	// What produced this entry (admission, submission, manual, ...)
	LedgerReferenceID   *uuid.UUID `gorm:"column:ledger_reference_id;type:uuid;index" json:"ledger_reference_id,omitempty"`
	LedgerReferenceType *string    `gorm:"column:ledger_reference_type;type:varchar(30)" json:"ledger_reference_type,omitempty"`

	LedgerDescription *string `gorm:"column:ledger_description;type:text" json:"ledger_description,omitempty"`

	LedgerCreatedBy *uuid.UUID `gorm:"column:ledger_created_by;type:uuid" json:"ledger_created_by,omitempty"`
	LedgerCreatedAt time.Time  `gorm:"column:ledger_created_at;type:timestamptz;not null;default:now();index" json:"ledger_created_at"`
}

func (LedgerEntryModel) TableName() string { return "ledger_entries" }

func (m *LedgerEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.LedgerCreatedAt.IsZero() {
		m.LedgerCreatedAt = time.Now()
	}
	return nil
}

// SignedAmount is +amount for credits, -amount for debits.
func (m LedgerEntryModel) SignedAmount() decimal.Decimal {
	if m.LedgerTransactionType == TransactionDebit {
		return m.LedgerAmount.Neg()
	}
	return m.LedgerAmount
}
