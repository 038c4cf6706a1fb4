// file: internals/features/finance/ledger/controller/ledger_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	dto "edubridge_backend/internals/features/finance/ledger/dto"
	model "edubridge_backend/internals/features/finance/ledger/model"
	service "edubridge_backend/internals/features/finance/ledger/service"
	helper "edubridge_backend/internals/helpers"
	authmw "edubridge_backend/internals/middlewares/auth"
)

type LedgerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLedgerController(db *gorm.DB) *LedgerController {
	return &LedgerController{DB: db, Validate: validator.New()}
}

var ledgerSortable = map[string]string{
	"created_at": "ledger_created_at",
	"amount":     "ledger_amount",
	"purpose":    "ledger_purpose",
}

// GET /ledger
func (ctl *LedgerController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.LedgerEntryModel{})

	if et := strings.TrimSpace(c.Query("entity_type")); et != "" {
		if !constants.IsLedgerEntityType(et) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown entity_type")
		}
		tx = tx.Where("ledger_entity_type = ?", et)
	}
	if raw := strings.TrimSpace(c.Query("entity_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid entity_id")
		}
		tx = tx.Where("ledger_entity_id = ?", id)
	}
	if purpose := strings.TrimSpace(c.Query("purpose")); purpose != "" {
		tx = tx.Where("ledger_purpose = ?", purpose)
	}
	if raw := strings.TrimSpace(c.Query("reference_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid reference_id")
		}
		tx = tx.Where("ledger_reference_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count ledger entries")
	}

	var rows []model.LedgerEntryModel
	if err := tx.
		Order(p.OrderClause(ledgerSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch ledger entries")
	}

	return helper.JsonList(c, dto.ToLedgerEntryResponses(rows), helper.BuildMeta(total, p))
}

// GET /wallets/:entityType/:entityId
// Balance + per-purpose totals + recent entries, all derived on read.
func (ctl *LedgerController) Wallet(c *fiber.Ctx) error {
	entityType := strings.ToLower(strings.TrimSpace(c.Params("entityType")))
	if !constants.IsLedgerEntityType(entityType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown entity type")
	}
	entityID, err := helper.ParseUUIDParam(c, "entityId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	balance, err := service.BalanceOf(ctl.DB, entityType, entityID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	totals, err := service.TotalsByPurpose(ctl.DB, entityType, entityID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build wallet statement")
	}

	var recent []model.LedgerEntryModel
	if err := ctl.DB.
		Where("ledger_entity_type = ? AND ledger_entity_id = ?", entityType, entityID).
		Order("ledger_created_at DESC").
		Limit(20).
		Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch wallet entries")
	}

	return helper.JsonOK(c, "ok", dto.WalletResponse{
		EntityID:   entityID,
		EntityType: entityType,
		Balance:    balance,
		Totals:     totals,
		Recent:     dto.ToLedgerEntryResponses(recent),
	})
}

// POST /wallets/adjust
// Manual credit/debit with a mandatory audit note. Exactly one append.
func (ctl *LedgerController) Adjust(c *fiber.Ctx) error {
	adminID, err := authmw.UserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.WalletAdjustDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	note, err := service.NormalizeAuditNote(req.Note)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	entry, err := service.NewEntry(
		req.EntityType, req.EntityID,
		req.TransactionType, req.Amount,
		req.Purpose,
		nil, nil, &note, &adminID,
	)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry, err = service.Append(ctl.DB, entry)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to write ledger entry")
	}

	return helper.JsonCreated(c, "wallet adjusted", dto.ToLedgerEntryResponse(entry))
}
