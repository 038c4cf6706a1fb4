// file: internals/features/directory/dto/agent_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "edubridge_backend/internals/features/directory/model"
)

type AgentCreateDTO struct {
	AgentConsultancyID uuid.UUID `json:"agent_consultancy_id" validate:"required"`
	AgentName          string    `json:"agent_name" validate:"required,min=2,max=120"`
	AgentEmail         *string   `json:"agent_email,omitempty" validate:"omitempty,email"`
	AgentPhone         *string   `json:"agent_phone,omitempty"`

	AgentCommissionType model.CommissionType `json:"agent_commission_type" validate:"omitempty,oneof=percentage flat"`
	AgentCommissionRate decimal.Decimal      `json:"agent_commission_rate"`
	AgentCommissionFlat decimal.Decimal      `json:"agent_commission_flat"`
}

type AgentUpdateDTO struct {
	AgentName           *string               `json:"agent_name,omitempty" validate:"omitempty,min=2,max=120"`
	AgentEmail          *string               `json:"agent_email,omitempty" validate:"omitempty,email"`
	AgentPhone          *string               `json:"agent_phone,omitempty"`
	AgentCommissionType *model.CommissionType `json:"agent_commission_type,omitempty" validate:"omitempty,oneof=percentage flat"`
	AgentCommissionRate *decimal.Decimal      `json:"agent_commission_rate,omitempty"`
	AgentCommissionFlat *decimal.Decimal      `json:"agent_commission_flat,omitempty"`
	AgentIsActive       *bool                 `json:"agent_is_active,omitempty"`
}

type AgentResponse struct {
	AgentID            uuid.UUID `json:"agent_id"`
	AgentConsultancyID uuid.UUID `json:"agent_consultancy_id"`
	AgentName          string    `json:"agent_name"`
	AgentEmail         *string   `json:"agent_email,omitempty"`
	AgentPhone         *string   `json:"agent_phone,omitempty"`

	AgentCommissionType model.CommissionType `json:"agent_commission_type"`
	AgentCommissionRate decimal.Decimal      `json:"agent_commission_rate"`
	AgentCommissionFlat decimal.Decimal      `json:"agent_commission_flat"`

	AgentIsActive bool       `json:"agent_is_active"`
	CreatedAt     time.Time  `json:"agent_created_at"`
	UpdatedAt     time.Time  `json:"agent_updated_at"`
	DeletedAt     *time.Time `json:"agent_deleted_at,omitempty"`
}

func ToAgentResponse(m model.AgentModel) AgentResponse {
	return AgentResponse{
		AgentID:             m.AgentID,
		AgentConsultancyID:  m.AgentConsultancyID,
		AgentName:           m.AgentName,
		AgentEmail:          m.AgentEmail,
		AgentPhone:          m.AgentPhone,
		AgentCommissionType: m.AgentCommissionType,
		AgentCommissionRate: m.AgentCommissionRate,
		AgentCommissionFlat: m.AgentCommissionFlat,
		AgentIsActive:       m.AgentIsActive,
		CreatedAt:           m.AgentCreatedAt,
		UpdatedAt:           m.AgentUpdatedAt,
		DeletedAt:           ptrTimeFromDeletedAt(m.AgentDeletedAt),
	}
}

func ToAgentResponses(list []model.AgentModel) []AgentResponse {
	out := make([]AgentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAgentResponse(v))
	}
	return out
}

func AgentCreateDTOToModel(d AgentCreateDTO) model.AgentModel {
	ct := d.AgentCommissionType
	if ct == "" {
		ct = model.CommissionTypePercentage
	}
	return model.AgentModel{
		AgentConsultancyID:  d.AgentConsultancyID,
		AgentName:           d.AgentName,
		AgentEmail:          d.AgentEmail,
		AgentPhone:          d.AgentPhone,
		AgentCommissionType: ct,
		AgentCommissionRate: d.AgentCommissionRate,
		AgentCommissionFlat: d.AgentCommissionFlat,
		AgentIsActive:       true,
	}
}

func ApplyAgentUpdate(m *model.AgentModel, d AgentUpdateDTO) {
	if d.AgentName != nil {
		m.AgentName = *d.AgentName
	}
	if d.AgentEmail != nil {
		m.AgentEmail = d.AgentEmail
	}
	if d.AgentPhone != nil {
		m.AgentPhone = d.AgentPhone
	}
	if d.AgentCommissionType != nil {
		m.AgentCommissionType = *d.AgentCommissionType
	}
	if d.AgentCommissionRate != nil {
		m.AgentCommissionRate = *d.AgentCommissionRate
	}
	if d.AgentCommissionFlat != nil {
		m.AgentCommissionFlat = *d.AgentCommissionFlat
	}
	if d.AgentIsActive != nil {
		m.AgentIsActive = *d.AgentIsActive
	}
}
