// file: internals/features/directory/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "edubridge_backend/internals/features/directory/dto"
	model "edubridge_backend/internals/features/directory/model"
	helper "edubridge_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

var masterCourseSortable = map[string]string{
	"created_at": "master_course_created_at",
	"name":       "master_course_name",
	"level":      "master_course_level",
}

var courseMappingSortable = map[string]string{
	"created_at":     "course_mapping_created_at",
	"university_fee": "course_mapping_university_fee",
	"display_fee":    "course_mapping_display_fee",
}

/* ==============================
   MASTER COURSES
============================== */

// GET /api/a/courses
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.MasterCourseModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(master_course_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if lvl := strings.TrimSpace(c.Query("level")); lvl != "" {
		tx = tx.Where("master_course_level = ?", lvl)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count courses")
	}

	var rows []model.MasterCourseModel
	if err := tx.
		Order(p.OrderClause(masterCourseSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch courses")
	}

	return helper.JsonList(c, dto.ToMasterCourseResponses(rows), helper.BuildMeta(total, p))
}

// POST /api/a/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.MasterCourseCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	row := dto.MasterCourseCreateDTOToModel(req)
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create course")
	}

	return helper.JsonCreated(c, "course created", dto.ToMasterCourseResponse(row))
}

// DELETE /api/a/courses/:id (soft delete)
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Delete(&model.MasterCourseModel{}, "master_course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}

	return helper.JsonDeleted(c, "course deleted", fiber.Map{"master_course_id": id})
}

/* ==============================
   UNIVERSITY COURSE MAPPINGS
============================== */

// GET /api/a/course-mappings
func (ctl *CourseController) ListMappings(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.UniversityCourseMappingModel{})
	if raw := strings.TrimSpace(c.Query("university_id")); raw != "" {
		uid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid university_id")
		}
		tx = tx.Where("course_mapping_university_id = ?", uid)
	}
	if raw := strings.TrimSpace(c.Query("master_course_id")); raw != "" {
		mid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid master_course_id")
		}
		tx = tx.Where("course_mapping_master_course_id = ?", mid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count course mappings")
	}

	var rows []model.UniversityCourseMappingModel
	if err := tx.
		Order(p.OrderClause(courseMappingSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch course mappings")
	}

	return helper.JsonList(c, dto.ToCourseMappingResponses(rows), helper.BuildMeta(total, p))
}

// POST /api/a/course-mappings
func (ctl *CourseController) CreateMapping(c *fiber.Ctx) error {
	var req dto.CourseMappingCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}
	if req.CourseMappingDisplayFee.LessThan(req.CourseMappingUniversityFee) {
		return helper.JsonError(c, fiber.StatusBadRequest, "display fee must not be below university fee")
	}

	var uniCount, courseCount int64
	ctl.DB.Model(&model.UniversityModel{}).Where("university_id = ?", req.CourseMappingUniversityID).Count(&uniCount)
	ctl.DB.Model(&model.MasterCourseModel{}).Where("master_course_id = ?", req.CourseMappingMasterCourseID).Count(&courseCount)
	if uniCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "university not found")
	}
	if courseCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}

	row := dto.CourseMappingCreateDTOToModel(req)
	if err := ctl.DB.Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "course already mapped to this university")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create course mapping")
	}

	return helper.JsonCreated(c, "course mapping created", dto.ToCourseMappingResponse(row))
}

// PATCH /api/a/course-mappings/:id
// Term changes never touch settlements already written; only future
// approvals read the new values.
func (ctl *CourseController) UpdateMapping(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CourseMappingUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var row model.UniversityCourseMappingModel
	if err := ctl.DB.First(&row, "course_mapping_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "course mapping not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch course mapping")
	}

	dto.ApplyCourseMappingUpdate(&row, req)
	if row.CourseMappingDisplayFee.LessThan(row.CourseMappingUniversityFee) {
		return helper.JsonError(c, fiber.StatusBadRequest, "display fee must not be below university fee")
	}
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update course mapping")
	}

	return helper.JsonUpdated(c, "course mapping updated", dto.ToCourseMappingResponse(row))
}

// DELETE /api/a/course-mappings/:id (soft delete)
func (ctl *CourseController) DeleteMapping(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Delete(&model.UniversityCourseMappingModel{}, "course_mapping_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete course mapping")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course mapping not found")
	}

	return helper.JsonDeleted(c, "course mapping deleted", fiber.Map{"course_mapping_id": id})
}
