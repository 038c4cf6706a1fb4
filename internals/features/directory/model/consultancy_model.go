// file: internals/features/directory/model/consultancy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================================
   PERMISSIONS — explicit tagged keys, not a free
   form map, so the set stays statically checkable
============================================== */

type ConsultancyPermissionSet struct {
	CanManageAgents     bool `json:"can_manage_agents"`
	CanCreateAdmissions bool `json:"can_create_admissions"`
	CanSubmitFees       bool `json:"can_submit_fees"`
	CanViewLedger       bool `json:"can_view_ledger"`
	CanRequestPayouts   bool `json:"can_request_payouts"`
}

func DefaultConsultancyPermissions() ConsultancyPermissionSet {
	return ConsultancyPermissionSet{
		CanManageAgents:     true,
		CanCreateAdmissions: true,
		CanSubmitFees:       true,
		CanViewLedger:       true,
	}
}

/* ==============================
   MODEL
============================== */

type ConsultancyModel struct {
	// PK
	ConsultancyID uuid.UUID `gorm:"column:consultancy_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"consultancy_id"`

	ConsultancyName string `gorm:"column:consultancy_name;type:varchar(160);not null;index" json:"consultancy_name"`
	ConsultancyCode string `gorm:"column:consultancy_code;type:varchar(40);not null;uniqueIndex" json:"consultancy_code"`

	ConsultancyContactName  *string `gorm:"column:consultancy_contact_name;type:varchar(120)" json:"consultancy_contact_name,omitempty"`
	ConsultancyContactEmail *string `gorm:"column:consultancy_contact_email;type:varchar(160)" json:"consultancy_contact_email,omitempty"`
	ConsultancyContactPhone *string `gorm:"column:consultancy_contact_phone;type:varchar(40)" json:"consultancy_contact_phone,omitempty"`
	ConsultancyAddress      *string `gorm:"column:consultancy_address;type:text" json:"consultancy_address,omitempty"`

	ConsultancyPermissions datatypes.JSONType[ConsultancyPermissionSet] `gorm:"column:consultancy_permissions;type:jsonb" json:"consultancy_permissions"`

	ConsultancyIsActive bool `gorm:"column:consultancy_is_active;not null;default:true;index" json:"consultancy_is_active"`

	// Audit
	ConsultancyCreatedAt time.Time      `gorm:"column:consultancy_created_at;type:timestamptz;not null;default:now();index" json:"consultancy_created_at"`
	ConsultancyUpdatedAt time.Time      `gorm:"column:consultancy_updated_at;type:timestamptz;not null;default:now()" json:"consultancy_updated_at"`
	ConsultancyDeletedAt gorm.DeletedAt `gorm:"column:consultancy_deleted_at;type:timestamptz;index" json:"-"`
}

func (ConsultancyModel) TableName() string { return "consultancies" }

func (m *ConsultancyModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ConsultancyCreatedAt.IsZero() {
		m.ConsultancyCreatedAt = now
	}
	m.ConsultancyUpdatedAt = now
	return nil
}

func (m *ConsultancyModel) BeforeUpdate(tx *gorm.DB) error {
	m.ConsultancyUpdatedAt = time.Now()
	return nil
}
