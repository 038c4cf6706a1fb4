// file: internals/features/users/dto/operator_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "edubridge_backend/internals/features/users/model"
)

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresAt    time.Time        `json:"expires_at"`
	Operator     OperatorResponse `json:"operator"`
}

type OperatorCreateDTO struct {
	Name     string `json:"operator_name" validate:"required,min=2,max=120"`
	Email    string `json:"operator_email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"operator_role" validate:"required,oneof=super_admin operator consultancy agent"`

	ConsultancyID *uuid.UUID `json:"operator_consultancy_id,omitempty"`
	AgentID       *uuid.UUID `json:"operator_agent_id,omitempty"`
}

type OperatorResponse struct {
	OperatorID    uuid.UUID  `json:"operator_id"`
	Name          string     `json:"operator_name"`
	Email         string     `json:"operator_email"`
	Role          string     `json:"operator_role"`
	ConsultancyID *uuid.UUID `json:"operator_consultancy_id,omitempty"`
	AgentID       *uuid.UUID `json:"operator_agent_id,omitempty"`
	IsActive      bool       `json:"operator_is_active"`
	CreatedAt     time.Time  `json:"operator_created_at"`
}

func ToOperatorResponse(m model.OperatorModel) OperatorResponse {
	return OperatorResponse{
		OperatorID:    m.OperatorID,
		Name:          m.OperatorName,
		Email:         m.OperatorEmail,
		Role:          m.OperatorRole,
		ConsultancyID: m.OperatorConsultancyID,
		AgentID:       m.OperatorAgentID,
		IsActive:      m.OperatorIsActive,
		CreatedAt:     m.OperatorCreatedAt,
	}
}

func ToOperatorResponses(list []model.OperatorModel) []OperatorResponse {
	out := make([]OperatorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToOperatorResponse(v))
	}
	return out
}
