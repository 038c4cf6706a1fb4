// file: internals/features/directory/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   MASTER COURSE — catalog entry
============================== */

type MasterCourseModel struct {
	// PK
	MasterCourseID uuid.UUID `gorm:"column:master_course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"master_course_id"`

	MasterCourseName  string `gorm:"column:master_course_name;type:varchar(160);not null;index" json:"master_course_name"`
	MasterCourseLevel string `gorm:"column:master_course_level;type:varchar(40);not null;index" json:"master_course_level"` // bachelor|master|diploma|phd

	MasterCourseDurationMonths *int16 `gorm:"column:master_course_duration_months;type:smallint" json:"master_course_duration_months,omitempty"`

	MasterCourseIsActive bool `gorm:"column:master_course_is_active;not null;default:true;index" json:"master_course_is_active"`

	// Audit
	MasterCourseCreatedAt time.Time      `gorm:"column:master_course_created_at;type:timestamptz;not null;default:now();index" json:"master_course_created_at"`
	MasterCourseUpdatedAt time.Time      `gorm:"column:master_course_updated_at;type:timestamptz;not null;default:now()" json:"master_course_updated_at"`
	MasterCourseDeletedAt gorm.DeletedAt `gorm:"column:master_course_deleted_at;type:timestamptz;index" json:"-"`
}

func (MasterCourseModel) TableName() string { return "master_courses" }

func (m *MasterCourseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.MasterCourseCreatedAt.IsZero() {
		m.MasterCourseCreatedAt = now
	}
	m.MasterCourseUpdatedAt = now
	return nil
}

func (m *MasterCourseModel) BeforeUpdate(tx *gorm.DB) error {
	m.MasterCourseUpdatedAt = time.Now()
	return nil
}

/* ==============================================
   UNIVERSITY COURSE MAPPING — one course offered
   by one university with its commercial terms.
   The gap display_fee - university_fee is the
   commission pool split between agent and
   consultancy on settlement.
============================================== */

type UniversityCourseMappingModel struct {
	// PK
	CourseMappingID uuid.UUID `gorm:"column:course_mapping_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_mapping_id"`

	// FKs
	CourseMappingUniversityID   uuid.UUID `gorm:"column:course_mapping_university_id;type:uuid;not null;index;uniqueIndex:uniq_university_course,priority:1" json:"course_mapping_university_id"`
	CourseMappingMasterCourseID uuid.UUID `gorm:"column:course_mapping_master_course_id;type:uuid;not null;index;uniqueIndex:uniq_university_course,priority:2" json:"course_mapping_master_course_id"`

	// Commercial terms
	CourseMappingUniversityFee   decimal.Decimal `gorm:"column:course_mapping_university_fee;type:numeric(14,2);not null" json:"course_mapping_university_fee"`
	CourseMappingDisplayFee      decimal.Decimal `gorm:"column:course_mapping_display_fee;type:numeric(14,2);not null" json:"course_mapping_display_fee"`
	CourseMappingCommissionType  CommissionType  `gorm:"column:course_mapping_commission_type;type:varchar(20);not null;default:'percentage'" json:"course_mapping_commission_type"`
	CourseMappingCommissionValue decimal.Decimal `gorm:"column:course_mapping_commission_value;type:numeric(14,2);not null;default:0" json:"course_mapping_commission_value"`

	CourseMappingIntake   *string `gorm:"column:course_mapping_intake;type:varchar(40)" json:"course_mapping_intake,omitempty"`
	CourseMappingIsActive bool    `gorm:"column:course_mapping_is_active;not null;default:true;index" json:"course_mapping_is_active"`

	// Audit
	CourseMappingCreatedAt time.Time      `gorm:"column:course_mapping_created_at;type:timestamptz;not null;default:now();index" json:"course_mapping_created_at"`
	CourseMappingUpdatedAt time.Time      `gorm:"column:course_mapping_updated_at;type:timestamptz;not null;default:now()" json:"course_mapping_updated_at"`
	CourseMappingDeletedAt gorm.DeletedAt `gorm:"column:course_mapping_deleted_at;type:timestamptz;index" json:"-"`
}

func (UniversityCourseMappingModel) TableName() string { return "university_course_mappings" }

func (m *UniversityCourseMappingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.CourseMappingCommissionType == "" {
		m.CourseMappingCommissionType = CommissionTypePercentage
	}
	if m.CourseMappingCreatedAt.IsZero() {
		m.CourseMappingCreatedAt = now
	}
	m.CourseMappingUpdatedAt = now
	return nil
}

func (m *UniversityCourseMappingModel) BeforeUpdate(tx *gorm.DB) error {
	m.CourseMappingUpdatedAt = time.Now()
	return nil
}
