// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	dto "edubridge_backend/internals/features/users/dto"
	model "edubridge_backend/internals/features/users/model"
	service "edubridge_backend/internals/features/users/service"
	helper "edubridge_backend/internals/helpers"
	authmw "edubridge_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var op model.OperatorModel
	if err := ctl.DB.First(&op, "operator_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch account")
	}
	if !op.OperatorIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
	}
	if !op.CheckPassword(req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	access, expiresAt, err := service.IssueAccessToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	refresh, err := service.IssueRefreshToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Operator:     dto.ToOperatorResponse(op),
	})
}

// POST /auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	rawID, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	var op model.OperatorModel
	if err := ctl.DB.First(&op, "operator_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "account no longer exists")
	}
	if !op.OperatorIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
	}

	access, expiresAt, err := service.IssueAccessToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	refresh, err := service.IssueRefreshToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return helper.JsonOK(c, "token refreshed", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Operator:     dto.ToOperatorResponse(op),
	})
}

// GET /auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	id, err := authmw.UserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var op model.OperatorModel
	if err := ctl.DB.First(&op, "operator_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch account")
	}

	return helper.JsonOK(c, "ok", dto.ToOperatorResponse(op))
}

// POST /operators (super admin)
func (ctl *AuthController) CreateOperator(c *fiber.Ctx) error {
	var req dto.OperatorCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	if req.Role == constants.RoleConsultancy && req.ConsultancyID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "consultancy accounts need a consultancy_id")
	}
	if req.Role == constants.RoleAgent && (req.ConsultancyID == nil || req.AgentID == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "agent accounts need consultancy_id and agent_id")
	}

	op := model.OperatorModel{
		OperatorName:          req.Name,
		OperatorEmail:         strings.ToLower(strings.TrimSpace(req.Email)),
		OperatorRole:          req.Role,
		OperatorConsultancyID: req.ConsultancyID,
		OperatorAgentID:       req.AgentID,
		OperatorIsActive:      true,
	}
	if err := op.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	if err := ctl.DB.Create(&op).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return helper.JsonCreated(c, "operator created", dto.ToOperatorResponse(op))
}

// GET /operators (super admin)
func (ctl *AuthController) ListOperators(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.OperatorModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("operator_role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count operators")
	}

	var rows []model.OperatorModel
	if err := tx.
		Order(p.OrderClause(map[string]string{
			"created_at": "operator_created_at",
			"name":       "operator_name",
			"email":      "operator_email",
		}, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch operators")
	}

	return helper.JsonList(c, dto.ToOperatorResponses(rows), helper.BuildMeta(total, p))
}
