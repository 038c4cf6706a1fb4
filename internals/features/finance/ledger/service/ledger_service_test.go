// file: internals/features/finance/ledger/service/ledger_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubridge_backend/internals/constants"
	model "edubridge_backend/internals/features/finance/ledger/model"
)

func credit(amount string) model.LedgerEntryModel {
	return model.LedgerEntryModel{
		LedgerTransactionType: model.TransactionCredit,
		LedgerAmount:          decimal.RequireFromString(amount),
	}
}

func debit(amount string) model.LedgerEntryModel {
	return model.LedgerEntryModel{
		LedgerTransactionType: model.TransactionDebit,
		LedgerAmount:          decimal.RequireFromString(amount),
	}
}

func TestSumEntries_EmptyIsZero(t *testing.T) {
	assert.True(t, SumEntries(nil).IsZero())
	assert.True(t, SumEntries([]model.LedgerEntryModel{}).IsZero())
}

func TestSumEntries_SignedFold(t *testing.T) {
	entries := []model.LedgerEntryModel{
		credit("100000"),
		credit("250.50"),
		debit("100.25"),
	}
	assert.True(t, SumEntries(entries).Equal(decimal.RequireFromString("100150.25")))
}

// Crediting then debiting the same amount must leave the balance unchanged.
func TestSumEntries_CreditThenDebitIsIdentity(t *testing.T) {
	base := []model.LedgerEntryModel{credit("90000")}
	before := SumEntries(base)

	withRoundTrip := append(base, credit("12345.67"), debit("12345.67"))
	after := SumEntries(withRoundTrip)

	assert.True(t, before.Equal(after))
}

func TestNewEntry_Valid(t *testing.T) {
	entityID := uuid.New()
	refID := uuid.New()
	refType := "admission"

	e, err := NewEntry(
		constants.EntityConsultancy, entityID,
		model.TransactionCredit, decimal.RequireFromString("90000"),
		model.PurposeCommission,
		&refID, &refType, nil, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, constants.EntityConsultancy, e.LedgerEntityType)
	assert.Equal(t, entityID, e.LedgerEntityID)
	assert.True(t, e.SignedAmount().Equal(decimal.RequireFromString("90000")))
}

func TestNewEntry_Rejections(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name   string
		build  func() (model.LedgerEntryModel, error)
		status int
	}{
		{
			"unknown entity type",
			func() (model.LedgerEntryModel, error) {
				return NewEntry("student", id, model.TransactionCredit, decimal.NewFromInt(10), model.PurposeBonus, nil, nil, nil, nil)
			},
			fiber.StatusBadRequest,
		},
		{
			"nil entity id",
			func() (model.LedgerEntryModel, error) {
				return NewEntry(constants.EntityAgent, uuid.Nil, model.TransactionCredit, decimal.NewFromInt(10), model.PurposeBonus, nil, nil, nil, nil)
			},
			fiber.StatusBadRequest,
		},
		{
			"zero amount",
			func() (model.LedgerEntryModel, error) {
				return NewEntry(constants.EntityAgent, id, model.TransactionCredit, decimal.Zero, model.PurposeBonus, nil, nil, nil, nil)
			},
			fiber.StatusBadRequest,
		},
		{
			"negative amount",
			func() (model.LedgerEntryModel, error) {
				return NewEntry(constants.EntityAgent, id, model.TransactionDebit, decimal.NewFromInt(-5), model.PurposePenalty, nil, nil, nil, nil)
			},
			fiber.StatusBadRequest,
		},
		{
			"bad transaction type",
			func() (model.LedgerEntryModel, error) {
				return NewEntry(constants.EntityAgent, id, model.TransactionType("transfer"), decimal.NewFromInt(5), model.PurposeBonus, nil, nil, nil, nil)
			},
			fiber.StatusBadRequest,
		},
		{
			"bad purpose",
			func() (model.LedgerEntryModel, error) {
				return NewEntry(constants.EntityAgent, id, model.TransactionCredit, decimal.NewFromInt(5), model.LedgerPurpose("salary"), nil, nil, nil, nil)
			},
			fiber.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, tc.status, fe.Code)
		})
	}
}

// Scenario: a manual adjustment is exactly one entry moving one balance.
func TestManualAdjustment_SingleEntrySingleBalance(t *testing.T) {
	agentID := uuid.New()
	note := "correction for double-counted commission"

	e, err := NewEntry(
		constants.EntityAgent, agentID,
		model.TransactionDebit, decimal.RequireFromString("5000"),
		model.PurposeManualAdjustment,
		nil, nil, &note, nil,
	)
	require.NoError(t, err)

	agentWallet := []model.LedgerEntryModel{credit("10000"), e}
	consultancyWallet := []model.LedgerEntryModel{credit("90000")}

	assert.True(t, SumEntries(agentWallet).Equal(decimal.RequireFromString("5000")))
	assert.True(t, SumEntries(consultancyWallet).Equal(decimal.RequireFromString("90000")), "other wallets untouched")
}

func TestNormalizeAuditNote(t *testing.T) {
	note, err := NormalizeAuditNote("  reconciled against bank statement  ")
	require.NoError(t, err)
	assert.Equal(t, "reconciled against bank statement", note)

	for _, raw := range []string{"", "   ", "\t\n", " ab "} {
		_, err := NormalizeAuditNote(raw)
		require.Error(t, err, "raw=%q", raw)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}
