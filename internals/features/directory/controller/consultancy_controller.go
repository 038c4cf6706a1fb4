// file: internals/features/directory/controller/consultancy_controller.go
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

type ConsultancyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewConsultancyController(db *gorm.DB) *ConsultancyController {
	return &ConsultancyController{DB: db, Validate: validator.New()}
}

var consultancySortable = map[string]string{
	"created_at": "consultancy_created_at",
	"name":       "consultancy_name",
	"code":       "consultancy_code",
}

// GET /api/a/consultancies
func (ctl *ConsultancyController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.ConsultancyModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(consultancy_name) LIKE ? OR LOWER(consultancy_code) LIKE ?", like, like)
	}
	if act := strings.TrimSpace(c.Query("is_active")); act != "" {
		tx = tx.Where("consultancy_is_active = ?", act == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count consultancies")
	}

	var rows []model.ConsultancyModel
	if err := tx.
		Order(p.OrderClause(consultancySortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch consultancies")
	}

	return helper.JsonList(c, dto.ToConsultancyResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/a/consultancies/:id
func (ctl *ConsultancyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.ConsultancyModel
	if err := ctl.DB.First(&row, "consultancy_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "consultancy not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch consultancy")
	}

	return helper.JsonOK(c, "ok", dto.ToConsultancyResponse(row))
}

// POST /api/a/consultancies
func (ctl *ConsultancyController) Create(c *fiber.Ctx) error {
	var req dto.ConsultancyCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	row := dto.ConsultancyCreateDTOToModel(req)
	if err := ctl.DB.Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "consultancy code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create consultancy")
	}

	return helper.JsonCreated(c, "consultancy created", dto.ToConsultancyResponse(row))
}

// PATCH /api/a/consultancies/:id
func (ctl *ConsultancyController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ConsultancyUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var row model.ConsultancyModel
	if err := ctl.DB.First(&row, "consultancy_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "consultancy not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch consultancy")
	}

	dto.ApplyConsultancyUpdate(&row, req)
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update consultancy")
	}

	return helper.JsonUpdated(c, "consultancy updated", dto.ToConsultancyResponse(row))
}

// DELETE /api/a/consultancies/:id (soft delete)
func (ctl *ConsultancyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Delete(&model.ConsultancyModel{}, "consultancy_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete consultancy")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "consultancy not found")
	}

	return helper.JsonDeleted(c, "consultancy deleted", fiber.Map{"consultancy_id": id})
}
