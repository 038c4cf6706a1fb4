// file: internals/features/admissions/model/admission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   STATUS (terminal after review)
============================== */

type AdmissionStatus string

const (
	AdmissionStatusPending  AdmissionStatus = "pending"
	AdmissionStatusApproved AdmissionStatus = "approved"
	AdmissionStatusRejected AdmissionStatus = "rejected"
	AdmissionStatusReverted AdmissionStatus = "reverted"
)

func (s AdmissionStatus) IsTerminal() bool {
	return s == AdmissionStatusApproved || s == AdmissionStatusRejected || s == AdmissionStatusReverted
}

/* ==============================
   MODEL
============================== */

type AdmissionModel struct {
	// PK
	AdmissionID uuid.UUID `gorm:"column:admission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admission_id"`

	// Student (inline, no separate account)
	AdmissionStudentName  string  `gorm:"column:admission_student_name;type:varchar(160);not null;index" json:"admission_student_name"`
	AdmissionStudentEmail *string `gorm:"column:admission_student_email;type:varchar(160)" json:"admission_student_email,omitempty"`
	AdmissionStudentPhone *string `gorm:"column:admission_student_phone;type:varchar(40)" json:"admission_student_phone,omitempty"`

	// FKs
	AdmissionUniversityID    uuid.UUID  `gorm:"column:admission_university_id;type:uuid;not null;index" json:"admission_university_id"`
	AdmissionCourseMappingID uuid.UUID  `gorm:"column:admission_course_mapping_id;type:uuid;not null;index" json:"admission_course_mapping_id"`
	AdmissionConsultancyID   uuid.UUID  `gorm:"column:admission_consultancy_id;type:uuid;not null;index" json:"admission_consultancy_id"`
	AdmissionAgentID         *uuid.UUID `gorm:"column:admission_agent_id;type:uuid;index" json:"admission_agent_id,omitempty"`

	// Money. fee_paid is written only by fee settlement.
	AdmissionTotalFee decimal.Decimal `gorm:"column:admission_total_fee;type:numeric(14,2);not null" json:"admission_total_fee"`
	AdmissionFeePaid  decimal.Decimal `gorm:"column:admission_fee_paid;type:numeric(14,2);not null;default:0" json:"admission_fee_paid"`

	// Review workflow
	AdmissionStatus       AdmissionStatus `gorm:"column:admission_status;type:varchar(20);not null;default:'pending';index" json:"admission_status"`
	AdmissionReviewedBy   *uuid.UUID      `gorm:"column:admission_reviewed_by;type:uuid" json:"admission_reviewed_by,omitempty"`
	AdmissionReviewedAt   *time.Time      `gorm:"column:admission_reviewed_at;type:timestamptz" json:"admission_reviewed_at,omitempty"`
	AdmissionReviewReason *string         `gorm:"column:admission_review_reason;type:text" json:"admission_review_reason,omitempty"`
	AdmissionDocuments    datatypes.JSON  `gorm:"column:admission_documents;type:jsonb" json:"admission_documents,omitempty"`

	AdmissionIntake *string `gorm:"column:admission_intake;type:varchar(40)" json:"admission_intake,omitempty"`
	AdmissionNotes  *string `gorm:"column:admission_notes;type:text" json:"admission_notes,omitempty"`

	// Audit
	AdmissionCreatedAt time.Time      `gorm:"column:admission_created_at;type:timestamptz;not null;default:now();index" json:"admission_created_at"`
	AdmissionUpdatedAt time.Time      `gorm:"column:admission_updated_at;type:timestamptz;not null;default:now()" json:"admission_updated_at"`
	AdmissionDeletedAt gorm.DeletedAt `gorm:"column:admission_deleted_at;type:timestamptz;index" json:"-"`
}

func (AdmissionModel) TableName() string { return "admissions" }

func (m *AdmissionModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AdmissionStatus == "" {
		m.AdmissionStatus = AdmissionStatusPending
	}
	if m.AdmissionCreatedAt.IsZero() {
		m.AdmissionCreatedAt = now
	}
	m.AdmissionUpdatedAt = now
	return nil
}

func (m *AdmissionModel) BeforeUpdate(tx *gorm.DB) error {
	m.AdmissionUpdatedAt = time.Now()
	return nil
}

// OutstandingFee is total_fee - fee_paid (may be negative on over-payment).
func (m *AdmissionModel) OutstandingFee() decimal.Decimal {
	return m.AdmissionTotalFee.Sub(m.AdmissionFeePaid)
}
