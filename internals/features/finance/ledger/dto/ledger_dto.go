// file: internals/features/finance/ledger/dto/ledger_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "edubridge_backend/internals/features/finance/ledger/model"
	service "edubridge_backend/internals/features/finance/ledger/service"
)

type LedgerEntryResponse struct {
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`

	EntityID   uuid.UUID `json:"ledger_entity_id"`
	EntityType string    `json:"ledger_entity_type"`

	TransactionType model.TransactionType `json:"ledger_transaction_type"`
	Amount          decimal.Decimal       `json:"ledger_amount"`
	SignedAmount    decimal.Decimal       `json:"ledger_signed_amount"`
	Purpose         model.LedgerPurpose   `json:"ledger_purpose"`

	ReferenceID   *uuid.UUID `json:"ledger_reference_id,omitempty"`
	ReferenceType *string    `json:"ledger_reference_type,omitempty"`
	Description   *string    `json:"ledger_description,omitempty"`

	CreatedBy *uuid.UUID `json:"ledger_created_by,omitempty"`
	CreatedAt time.Time  `json:"ledger_created_at"`
}

func ToLedgerEntryResponse(m model.LedgerEntryModel) LedgerEntryResponse {
	return LedgerEntryResponse{
		LedgerEntryID:   m.LedgerEntryID,
		EntityID:        m.LedgerEntityID,
		EntityType:      m.LedgerEntityType,
		TransactionType: m.LedgerTransactionType,
		Amount:          m.LedgerAmount,
		SignedAmount:    m.SignedAmount(),
		Purpose:         m.LedgerPurpose,
		ReferenceID:     m.LedgerReferenceID,
		ReferenceType:   m.LedgerReferenceType,
		Description:     m.LedgerDescription,
		CreatedBy:       m.LedgerCreatedBy,
		CreatedAt:       m.LedgerCreatedAt,
	}
}

func ToLedgerEntryResponses(list []model.LedgerEntryModel) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToLedgerEntryResponse(v))
	}
	return out
}

// WalletResponse is the derived read model: balance plus recent activity.
type WalletResponse struct {
	EntityID   uuid.UUID `json:"entity_id"`
	EntityType string    `json:"entity_type"`

	Balance decimal.Decimal        `json:"balance"`
	Totals  []service.PurposeTotal `json:"totals_by_purpose"`
	Recent  []LedgerEntryResponse  `json:"recent_entries"`
}

type WalletAdjustDTO struct {
	EntityType      string                `json:"entity_type" validate:"required,oneof=university consultancy agent system"`
	EntityID        uuid.UUID             `json:"entity_id" validate:"required"`
	TransactionType model.TransactionType `json:"transaction_type" validate:"required,oneof=credit debit"`
	Amount          decimal.Decimal       `json:"amount" validate:"required"`
	Purpose         model.LedgerPurpose   `json:"purpose" validate:"required,oneof=manual_adjustment refund bonus penalty"`
	// Audit note is mandatory for hand-made ledger writes.
	Note string `json:"note" validate:"required,min=3"`
}
