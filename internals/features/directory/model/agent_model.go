// file: internals/features/directory/model/agent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — agent commission terms
============================== */

type CommissionType string

const (
	CommissionTypePercentage CommissionType = "percentage"
	CommissionTypeFlat       CommissionType = "flat"
)

/* ==============================
   MODEL
============================== */

type AgentModel struct {
	// PK
	AgentID uuid.UUID `gorm:"column:agent_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"agent_id"`

	// Tenant: every agent belongs to one consultancy
	AgentConsultancyID uuid.UUID `gorm:"column:agent_consultancy_id;type:uuid;not null;index" json:"agent_consultancy_id"`

	AgentName  string  `gorm:"column:agent_name;type:varchar(120);not null;index" json:"agent_name"`
	AgentEmail *string `gorm:"column:agent_email;type:varchar(160)" json:"agent_email,omitempty"`
	AgentPhone *string `gorm:"column:agent_phone;type:varchar(40)" json:"agent_phone,omitempty"`

	// Commission terms. Percentage agents take commission_rate% of the pool,
	// flat agents take commission_flat outright.
	AgentCommissionType CommissionType  `gorm:"column:agent_commission_type;type:varchar(20);not null;default:'percentage'" json:"agent_commission_type"`
	AgentCommissionRate decimal.Decimal `gorm:"column:agent_commission_rate;type:numeric(5,2);not null;default:0" json:"agent_commission_rate"`
	AgentCommissionFlat decimal.Decimal `gorm:"column:agent_commission_flat;type:numeric(14,2);not null;default:0" json:"agent_commission_flat"`

	AgentIsActive bool `gorm:"column:agent_is_active;not null;default:true;index" json:"agent_is_active"`

	// Audit
	AgentCreatedAt time.Time      `gorm:"column:agent_created_at;type:timestamptz;not null;default:now();index" json:"agent_created_at"`
	AgentUpdatedAt time.Time      `gorm:"column:agent_updated_at;type:timestamptz;not null;default:now()" json:"agent_updated_at"`
	AgentDeletedAt gorm.DeletedAt `gorm:"column:agent_deleted_at;type:timestamptz;index" json:"-"`
}

func (AgentModel) TableName() string { return "agents" }

func (m *AgentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AgentCommissionType == "" {
		m.AgentCommissionType = CommissionTypePercentage
	}
	if m.AgentCreatedAt.IsZero() {
		m.AgentCreatedAt = now
	}
	m.AgentUpdatedAt = now
	return nil
}

func (m *AgentModel) BeforeUpdate(tx *gorm.DB) error {
	m.AgentUpdatedAt = time.Now()
	return nil
}
