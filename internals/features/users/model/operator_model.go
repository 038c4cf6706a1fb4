// file: internals/features/users/model/operator_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* ==============================================
   OPERATOR — a backend account: super admin,
   plain operator, or a consultancy/agent login
   scoped by the FK columns.
============================================== */

type OperatorModel struct {
	// PK
	OperatorID uuid.UUID `gorm:"column:operator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"operator_id"`

	OperatorName  string `gorm:"column:operator_name;type:varchar(120);not null" json:"operator_name"`
	OperatorEmail string `gorm:"column:operator_email;type:varchar(160);not null;uniqueIndex" json:"operator_email"`

	// bcrypt hash, never serialized
	OperatorPassword string `gorm:"column:operator_password;type:varchar(100);not null" json:"-"`

	OperatorRole string `gorm:"column:operator_role;type:varchar(30);not null;index" json:"operator_role"`

	// Tenant scope for consultancy/agent logins
	OperatorConsultancyID *uuid.UUID `gorm:"column:operator_consultancy_id;type:uuid;index" json:"operator_consultancy_id,omitempty"`
	OperatorAgentID       *uuid.UUID `gorm:"column:operator_agent_id;type:uuid" json:"operator_agent_id,omitempty"`

	OperatorIsActive bool `gorm:"column:operator_is_active;not null;default:true;index" json:"operator_is_active"`

	// Audit
	OperatorCreatedAt time.Time      `gorm:"column:operator_created_at;type:timestamptz;not null;default:now()" json:"operator_created_at"`
	OperatorUpdatedAt time.Time      `gorm:"column:operator_updated_at;type:timestamptz;not null;default:now()" json:"operator_updated_at"`
	OperatorDeletedAt gorm.DeletedAt `gorm:"column:operator_deleted_at;type:timestamptz;index" json:"-"`
}

func (OperatorModel) TableName() string { return "operators" }

func (m *OperatorModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.OperatorCreatedAt.IsZero() {
		m.OperatorCreatedAt = now
	}
	m.OperatorUpdatedAt = now
	return nil
}

func (m *OperatorModel) BeforeUpdate(tx *gorm.DB) error {
	m.OperatorUpdatedAt = time.Now()
	return nil
}

// SetPassword hashes and stores the plaintext.
func (m *OperatorModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.OperatorPassword = string(hash)
	return nil
}

// CheckPassword compares the plaintext against the stored hash.
func (m *OperatorModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.OperatorPassword), []byte(plain)) == nil
}
