// file: internals/features/directory/controller/university_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "edubridge_backend/internals/features/directory/dto"
	model "edubridge_backend/internals/features/directory/model"
	helper "edubridge_backend/internals/helpers"
)

type UniversityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUniversityController(db *gorm.DB) *UniversityController {
	return &UniversityController{DB: db, Validate: validator.New()}
}

var universitySortable = map[string]string{
	"created_at": "university_created_at",
	"name":       "university_name",
	"code":       "university_code",
	"country":    "university_country",
}

// GET /api/a/universities
func (ctl *UniversityController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.UniversityModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(university_name) LIKE ? OR LOWER(university_code) LIKE ?", like, like)
	}
	if country := strings.TrimSpace(c.Query("country")); country != "" {
		tx = tx.Where("university_country = ?", country)
	}
	if act := strings.TrimSpace(c.Query("is_active")); act != "" {
		tx = tx.Where("university_is_active = ?", act == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count universities")
	}

	var rows []model.UniversityModel
	if err := tx.
		Order(p.OrderClause(universitySortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch universities")
	}

	return helper.JsonList(c, dto.ToUniversityResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/a/universities/:id
func (ctl *UniversityController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.UniversityModel
	if err := ctl.DB.First(&row, "university_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "university not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch university")
	}

	return helper.JsonOK(c, "ok", dto.ToUniversityResponse(row))
}

// POST /api/a/universities
func (ctl *UniversityController) Create(c *fiber.Ctx) error {
	var req dto.UniversityCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	row := dto.UniversityCreateDTOToModel(req)
	if err := ctl.DB.Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "university code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create university")
	}

	return helper.JsonCreated(c, "university created", dto.ToUniversityResponse(row))
}

// PATCH /api/a/universities/:id
func (ctl *UniversityController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UniversityUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var row model.UniversityModel
	if err := ctl.DB.First(&row, "university_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "university not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch university")
	}

	dto.ApplyUniversityUpdate(&row, req)
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update university")
	}

	return helper.JsonUpdated(c, "university updated", dto.ToUniversityResponse(row))
}

// DELETE /api/a/universities/:id (soft delete)
func (ctl *UniversityController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Delete(&model.UniversityModel{}, "university_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete university")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "university not found")
	}

	return helper.JsonDeleted(c, "university deleted", fiber.Map{"university_id": id})
}
