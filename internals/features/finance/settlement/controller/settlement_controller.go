// file: internals/features/finance/settlement/controller/settlement_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "edubridge_backend/internals/features/finance/settlement/service"
	subdto "edubridge_backend/internals/features/finance/submissions/dto"
	helper "edubridge_backend/internals/helpers"
	authmw "edubridge_backend/internals/middlewares/auth"
)

type SettlementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettlementController(db *gorm.DB) *SettlementController {
	return &SettlementController{DB: db, Validate: validator.New()}
}

// POST /fee-submissions/:id/review
// Approve settles the submission (ledger credits + fee_paid) atomically;
// reject only flips the status. Terminal submissions come back as 409.
func (ctl *SettlementController) Review(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	reviewerID, err := authmw.UserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req subdto.FeeSubmissionReviewDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	sub, err := service.ReviewFeeSubmission(
		ctl.DB, id,
		service.ReviewDecision(req.Decision),
		reviewerID, req.Reason,
	)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "fee submission reviewed", subdto.ToFeeSubmissionResponse(sub))
}
