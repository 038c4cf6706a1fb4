// file: internals/features/admissions/controller/admission_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	admdto "edubridge_backend/internals/features/admissions/dto"
	admmodel "edubridge_backend/internals/features/admissions/model"
	admsvc "edubridge_backend/internals/features/admissions/service"
	dirmodel "edubridge_backend/internals/features/directory/model"
	helper "edubridge_backend/internals/helpers"
	authmw "edubridge_backend/internals/middlewares/auth"
)

type AdmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdmissionController(db *gorm.DB) *AdmissionController {
	return &AdmissionController{DB: db, Validate: validator.New()}
}

var admissionSortable = map[string]string{
	"created_at": "admission_created_at",
	"student":    "admission_student_name",
	"status":     "admission_status",
	"total_fee":  "admission_total_fee",
}

// GET /admissions
// Consultancy callers only see their own admissions.
func (ctl *AdmissionController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&admmodel.AdmissionModel{})

	if cid, ok := authmw.ConsultancyID(c); ok {
		tx = tx.Where("admission_consultancy_id = ?", cid)
	} else if raw := strings.TrimSpace(c.Query("consultancy_id")); raw != "" {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid consultancy_id")
		}
		tx = tx.Where("admission_consultancy_id = ?", cid)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("admission_status = ?", st)
	}
	if raw := strings.TrimSpace(c.Query("university_id")); raw != "" {
		uid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid university_id")
		}
		tx = tx.Where("admission_university_id = ?", uid)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(admission_student_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count admissions")
	}

	var rows []admmodel.AdmissionModel
	if err := tx.
		Order(p.OrderClause(admissionSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch admissions")
	}

	return helper.JsonList(c, admdto.ToAdmissionResponses(rows), helper.BuildMeta(total, p))
}

// GET /admissions/:id
func (ctl *AdmissionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row admmodel.AdmissionModel
	if err := ctl.DB.First(&row, "admission_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "admission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch admission")
	}

	if cid, ok := authmw.ConsultancyID(c); ok && row.AdmissionConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "admission belongs to another consultancy")
	}

	return helper.JsonOK(c, "ok", admdto.ToAdmissionResponse(row))
}

// POST /admissions
func (ctl *AdmissionController) Create(c *fiber.Ctx) error {
	var req admdto.AdmissionCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if cid, ok := authmw.ConsultancyID(c); ok {
		req.ConsultancyID = cid
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}
	if req.TotalFee.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "total fee must be greater than zero")
	}

	// The course mapping must exist and belong to the named university.
	var mapping dirmodel.UniversityCourseMappingModel
	if err := ctl.DB.First(&mapping, "course_mapping_id = ?", req.CourseMappingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "course mapping not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch course mapping")
	}
	if mapping.CourseMappingUniversityID != req.UniversityID {
		return helper.JsonError(c, fiber.StatusBadRequest, "course mapping does not belong to this university")
	}

	var consultancy dirmodel.ConsultancyModel
	if err := ctl.DB.First(&consultancy, "consultancy_id = ?", req.ConsultancyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "consultancy not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch consultancy")
	}
	if !consultancy.ConsultancyPermissions.Data().CanCreateAdmissions {
		return helper.JsonError(c, fiber.StatusForbidden, "consultancy is not allowed to create admissions")
	}

	if req.AgentID != nil {
		var agent dirmodel.AgentModel
		if err := ctl.DB.First(&agent, "agent_id = ?", *req.AgentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "agent not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch agent")
		}
		if agent.AgentConsultancyID != req.ConsultancyID {
			return helper.JsonError(c, fiber.StatusBadRequest, "agent does not belong to this consultancy")
		}
	}

	row := admdto.AdmissionCreateDTOToModel(req)
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create admission")
	}

	return helper.JsonCreated(c, "admission created", admdto.ToAdmissionResponse(row))
}

// POST /admissions/:id/review
// Approve, reject, or revert a pending admission. Review never moves money;
// fee_paid belongs to the fee settlement flow.
func (ctl *AdmissionController) Review(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	reviewerID, err := authmw.UserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req admdto.AdmissionReviewDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var row admmodel.AdmissionModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "admission_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "admission not found")
			}
			return err
		}

		next, err := admsvc.ResolveReview(row.AdmissionStatus, admsvc.ReviewDecision(req.Decision), req.Reason)
		if err != nil {
			return err
		}

		now := time.Now()
		row.AdmissionStatus = next
		row.AdmissionReviewedBy = &reviewerID
		row.AdmissionReviewedAt = &now
		if reason := strings.TrimSpace(req.Reason); reason != "" {
			row.AdmissionReviewReason = &reason
		}
		if len(req.Documents) > 0 {
			row.AdmissionDocuments = req.Documents
		}

		return tx.Save(&row).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "admission reviewed", admdto.ToAdmissionResponse(row))
}

// DELETE /admissions/:id (soft delete, pending only)
func (ctl *AdmissionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row admmodel.AdmissionModel
	if err := ctl.DB.First(&row, "admission_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "admission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch admission")
	}
	if row.AdmissionStatus != admmodel.AdmissionStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "only pending admissions can be deleted")
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete admission")
	}

	return helper.JsonDeleted(c, "admission deleted", fiber.Map{"admission_id": id})
}
