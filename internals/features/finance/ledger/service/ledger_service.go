// file: internals/features/finance/ledger/service/ledger_service.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	model "edubridge_backend/internals/features/finance/ledger/model"
)

/* ==============================
   PURE CORE
============================== */

// SumEntries folds entries into a signed balance; this mirrors the SQL
// aggregate BalanceOf runs so the two can be property-tested against each
// other's semantics.
func SumEntries(entries []model.LedgerEntryModel) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.SignedAmount())
	}
	return total
}

// NormalizeAuditNote trims a manual-adjustment note and rejects blanks.
// Validation tags only see the raw value, so "   " would otherwise slip
// through as an empty description.
func NormalizeAuditNote(raw string) (string, error) {
	note := strings.TrimSpace(raw)
	if len(note) < 3 {
		return "", fiber.NewError(fiber.StatusBadRequest, "audit note must be at least 3 characters")
	}
	return note, nil
}

// NewEntry validates and shapes a ledger append. Amount must be strictly
// positive; direction is carried by the transaction type.
func NewEntry(
	entityType string,
	entityID uuid.UUID,
	txType model.TransactionType,
	amount decimal.Decimal,
	purpose model.LedgerPurpose,
	referenceID *uuid.UUID,
	referenceType *string,
	description *string,
	createdBy *uuid.UUID,
) (model.LedgerEntryModel, error) {
	if !constants.IsLedgerEntityType(entityType) {
		return model.LedgerEntryModel{}, fiber.NewError(fiber.StatusBadRequest, "unknown wallet entity type")
	}
	if entityID == uuid.Nil {
		return model.LedgerEntryModel{}, fiber.NewError(fiber.StatusBadRequest, "entity id is required")
	}
	if txType != model.TransactionCredit && txType != model.TransactionDebit {
		return model.LedgerEntryModel{}, fiber.NewError(fiber.StatusBadRequest, "transaction type must be credit or debit")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.LedgerEntryModel{}, fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")
	}
	if !model.IsLedgerPurpose(purpose) {
		return model.LedgerEntryModel{}, fiber.NewError(fiber.StatusBadRequest, "unknown ledger purpose")
	}
	return model.LedgerEntryModel{
		LedgerEntityID:        entityID,
		LedgerEntityType:      entityType,
		LedgerTransactionType: txType,
		LedgerAmount:          amount,
		LedgerPurpose:         purpose,
		LedgerReferenceID:     referenceID,
		LedgerReferenceType:   referenceType,
		LedgerDescription:     description,
		LedgerCreatedBy:       createdBy,
	}, nil
}

/* ==============================
   PERSISTENCE
============================== */

// Append writes one validated entry using the given handle, which may be a
// transaction (settlement runs several appends atomically).
func Append(tx *gorm.DB, entry model.LedgerEntryModel) (model.LedgerEntryModel, error) {
	if err := tx.Create(&entry).Error; err != nil {
		return model.LedgerEntryModel{}, err
	}
	return entry, nil
}

// BalanceOf derives a wallet balance from its entries. There is no stored
// balance row to drift out of sync.
func BalanceOf(db *gorm.DB, entityType string, entityID uuid.UUID) (decimal.Decimal, error) {
	if !constants.IsLedgerEntityType(entityType) {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "unknown wallet entity type")
	}

	var raw *string
	err := db.Model(&model.LedgerEntryModel{}).
		Select("COALESCE(SUM(CASE WHEN ledger_transaction_type = 'credit' THEN ledger_amount ELSE -ledger_amount END), 0)").
		Where("ledger_entity_type = ? AND ledger_entity_id = ?", entityType, entityID).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}

// PurposeTotal is one row of the per-purpose wallet statement.
type PurposeTotal struct {
	Purpose model.LedgerPurpose `json:"purpose"`
	Credit  decimal.Decimal     `json:"credit"`
	Debit   decimal.Decimal     `json:"debit"`
}

// TotalsByPurpose groups a wallet's entries by purpose for the statement view.
func TotalsByPurpose(db *gorm.DB, entityType string, entityID uuid.UUID) ([]PurposeTotal, error) {
	type row struct {
		Purpose string
		Credit  string
		Debit   string
	}
	var rows []row
	err := db.Model(&model.LedgerEntryModel{}).
		Select(`ledger_purpose AS purpose,
			COALESCE(SUM(CASE WHEN ledger_transaction_type = 'credit' THEN ledger_amount ELSE 0 END), 0) AS credit,
			COALESCE(SUM(CASE WHEN ledger_transaction_type = 'debit' THEN ledger_amount ELSE 0 END), 0) AS debit`).
		Where("ledger_entity_type = ? AND ledger_entity_id = ?", entityType, entityID).
		Group("ledger_purpose").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]PurposeTotal, 0, len(rows))
	for _, r := range rows {
		credit, err := decimal.NewFromString(r.Credit)
		if err != nil {
			return nil, err
		}
		debit, err := decimal.NewFromString(r.Debit)
		if err != nil {
			return nil, err
		}
		out = append(out, PurposeTotal{
			Purpose: model.LedgerPurpose(r.Purpose),
			Credit:  credit,
			Debit:   debit,
		})
	}
	return out, nil
}
