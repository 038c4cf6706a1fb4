// file: internals/features/finance/submissions/controller/fee_submission_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	admmodel "edubridge_backend/internals/features/admissions/model"
	dto "edubridge_backend/internals/features/finance/submissions/dto"
	model "edubridge_backend/internals/features/finance/submissions/model"
	helper "edubridge_backend/internals/helpers"
	authmw "edubridge_backend/internals/middlewares/auth"
)

type FeeSubmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeSubmissionController(db *gorm.DB) *FeeSubmissionController {
	return &FeeSubmissionController{DB: db, Validate: validator.New()}
}

var submissionSortable = map[string]string{
	"created_at":   "submission_created_at",
	"payment_date": "submission_payment_date",
	"amount":       "submission_amount_received",
	"status":       "submission_status",
}

// POST /fee-submissions
// Records a claim that money arrived. No balance effect until review.
func (ctl *FeeSubmissionController) Create(c *fiber.Ctx) error {
	var req dto.FeeSubmissionCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}
	if req.AmountReceived.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount received must be greater than zero")
	}

	var admission admmodel.AdmissionModel
	if err := ctl.DB.First(&admission, "admission_id = ?", req.AdmissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "admission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch admission")
	}
	if cid, ok := authmw.ConsultancyID(c); ok && admission.AdmissionConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "admission belongs to another consultancy")
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	row := model.FeeSubmissionModel{
		SubmissionAdmissionID:    req.AdmissionID,
		SubmissionAmountReceived: req.AmountReceived,
		SubmissionPaymentMode:    req.PaymentMode,
		SubmissionPaymentDate:    paymentDate,
		SubmissionTransactionID:  req.TransactionID,
		SubmissionProofURLs:      req.ProofURLs,
		SubmissionNotes:          req.Notes,
		SubmissionStatus:         model.SubmissionStatusPending,
	}
	if uid, err := authmw.UserID(c); err == nil {
		row.SubmissionSubmittedBy = &uid
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create fee submission")
	}

	resp := dto.ToFeeSubmissionResponse(row)
	outstanding := admission.OutstandingFee()
	resp.AdmissionOutstanding = &outstanding

	return helper.JsonCreated(c, "fee submission recorded", resp)
}

// GET /fee-submissions
func (ctl *FeeSubmissionController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.FeeSubmissionModel{})

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("submission_status = ?", st)
	}
	if raw := strings.TrimSpace(c.Query("admission_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission_id")
		}
		tx = tx.Where("submission_admission_id = ?", id)
	}
	if cid, ok := authmw.ConsultancyID(c); ok {
		tx = tx.Where(
			"submission_admission_id IN (?)",
			ctl.DB.Model(&admmodel.AdmissionModel{}).
				Select("admission_id").
				Where("admission_consultancy_id = ?", cid),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count fee submissions")
	}

	var rows []model.FeeSubmissionModel
	if err := tx.
		Order(p.OrderClause(submissionSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch fee submissions")
	}

	return helper.JsonList(c, dto.ToFeeSubmissionResponses(rows), helper.BuildMeta(total, p))
}

// GET /fee-submissions/:id
func (ctl *FeeSubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.FeeSubmissionModel
	if err := ctl.DB.First(&row, "submission_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "fee submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch fee submission")
	}

	var admission admmodel.AdmissionModel
	if err := ctl.DB.First(&admission, "admission_id = ?", row.SubmissionAdmissionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch admission")
	}
	if cid, ok := authmw.ConsultancyID(c); ok && admission.AdmissionConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "fee submission belongs to another consultancy")
	}

	resp := dto.ToFeeSubmissionResponse(row)
	outstanding := admission.OutstandingFee()
	resp.AdmissionOutstanding = &outstanding

	return helper.JsonOK(c, "ok", resp)
}
