// file: internals/features/directory/controller/agent_controller.go
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
	authmw "edubridge_backend/internals/middlewares/auth"
)

type AgentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAgentController(db *gorm.DB) *AgentController {
	return &AgentController{DB: db, Validate: validator.New()}
}

var agentSortable = map[string]string{
	"created_at": "agent_created_at",
	"name":       "agent_name",
}

// GET /api/a/agents
// Consultancy-scoped callers only ever see their own agents.
func (ctl *AgentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.AgentModel{})

	if cid, ok := authmw.ConsultancyID(c); ok {
		tx = tx.Where("agent_consultancy_id = ?", cid)
	} else if raw := strings.TrimSpace(c.Query("consultancy_id")); raw != "" {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid consultancy_id")
		}
		tx = tx.Where("agent_consultancy_id = ?", cid)
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(agent_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if act := strings.TrimSpace(c.Query("is_active")); act != "" {
		tx = tx.Where("agent_is_active = ?", act == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count agents")
	}

	var rows []model.AgentModel
	if err := tx.
		Order(p.OrderClause(agentSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch agents")
	}

	return helper.JsonList(c, dto.ToAgentResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/a/agents/:id
func (ctl *AgentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.AgentModel
	if err := ctl.DB.First(&row, "agent_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "agent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch agent")
	}

	if cid, ok := authmw.ConsultancyID(c); ok && row.AgentConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "agent belongs to another consultancy")
	}

	return helper.JsonOK(c, "ok", dto.ToAgentResponse(row))
}

// POST /api/a/agents
func (ctl *AgentController) Create(c *fiber.Ctx) error {
	var req dto.AgentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Consultancy operators can only register agents under themselves.
	if cid, ok := authmw.ConsultancyID(c); ok {
		req.AgentConsultancyID = cid
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var parent model.ConsultancyModel
	if err := ctl.DB.First(&parent, "consultancy_id = ?", req.AgentConsultancyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "consultancy not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch consultancy")
	}
	if !parent.ConsultancyPermissions.Data().CanManageAgents {
		return helper.JsonError(c, fiber.StatusForbidden, "consultancy is not allowed to manage agents")
	}

	row := dto.AgentCreateDTOToModel(req)
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create agent")
	}

	return helper.JsonCreated(c, "agent created", dto.ToAgentResponse(row))
}

// PATCH /api/a/agents/:id
func (ctl *AgentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AgentUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var row model.AgentModel
	if err := ctl.DB.First(&row, "agent_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "agent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch agent")
	}

	if cid, ok := authmw.ConsultancyID(c); ok && row.AgentConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "agent belongs to another consultancy")
	}

	dto.ApplyAgentUpdate(&row, req)
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update agent")
	}

	return helper.JsonUpdated(c, "agent updated", dto.ToAgentResponse(row))
}

// DELETE /api/a/agents/:id (soft delete)
func (ctl *AgentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.AgentModel
	if err := ctl.DB.First(&row, "agent_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "agent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch agent")
	}
	if cid, ok := authmw.ConsultancyID(c); ok && row.AgentConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "agent belongs to another consultancy")
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete agent")
	}

	return helper.JsonDeleted(c, "agent deleted", fiber.Map{"agent_id": id})
}
