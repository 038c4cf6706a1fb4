// file: internals/features/directory/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "edubridge_backend/internals/features/directory/model"
)

/* ==============================
   MASTER COURSE
============================== */

type MasterCourseCreateDTO struct {
	MasterCourseName           string `json:"master_course_name" validate:"required,min=2,max=160"`
	MasterCourseLevel          string `json:"master_course_level" validate:"required,oneof=bachelor master diploma phd"`
	MasterCourseDurationMonths *int16 `json:"master_course_duration_months,omitempty"`
}

type MasterCourseResponse struct {
	MasterCourseID             uuid.UUID `json:"master_course_id"`
	MasterCourseName           string    `json:"master_course_name"`
	MasterCourseLevel          string    `json:"master_course_level"`
	MasterCourseDurationMonths *int16    `json:"master_course_duration_months,omitempty"`
	MasterCourseIsActive       bool      `json:"master_course_is_active"`
	CreatedAt                  time.Time `json:"master_course_created_at"`
	UpdatedAt                  time.Time `json:"master_course_updated_at"`
}

func ToMasterCourseResponse(m model.MasterCourseModel) MasterCourseResponse {
	return MasterCourseResponse{
		MasterCourseID:             m.MasterCourseID,
		MasterCourseName:           m.MasterCourseName,
		MasterCourseLevel:          m.MasterCourseLevel,
		MasterCourseDurationMonths: m.MasterCourseDurationMonths,
		MasterCourseIsActive:       m.MasterCourseIsActive,
		CreatedAt:                  m.MasterCourseCreatedAt,
		UpdatedAt:                  m.MasterCourseUpdatedAt,
	}
}

func ToMasterCourseResponses(list []model.MasterCourseModel) []MasterCourseResponse {
	out := make([]MasterCourseResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToMasterCourseResponse(v))
	}
	return out
}

func MasterCourseCreateDTOToModel(d MasterCourseCreateDTO) model.MasterCourseModel {
	return model.MasterCourseModel{
		MasterCourseName:           d.MasterCourseName,
		MasterCourseLevel:          d.MasterCourseLevel,
		MasterCourseDurationMonths: d.MasterCourseDurationMonths,
		MasterCourseIsActive:       true,
	}
}

/* ==============================
   UNIVERSITY COURSE MAPPING
============================== */

type CourseMappingCreateDTO struct {
	CourseMappingUniversityID   uuid.UUID `json:"course_mapping_university_id" validate:"required"`
	CourseMappingMasterCourseID uuid.UUID `json:"course_mapping_master_course_id" validate:"required"`

	CourseMappingUniversityFee   decimal.Decimal      `json:"course_mapping_university_fee" validate:"required"`
	CourseMappingDisplayFee      decimal.Decimal      `json:"course_mapping_display_fee" validate:"required"`
	CourseMappingCommissionType  model.CommissionType `json:"course_mapping_commission_type" validate:"omitempty,oneof=percentage flat"`
	CourseMappingCommissionValue decimal.Decimal      `json:"course_mapping_commission_value"`

	CourseMappingIntake *string `json:"course_mapping_intake,omitempty"`
}

type CourseMappingUpdateDTO struct {
	CourseMappingUniversityFee   *decimal.Decimal      `json:"course_mapping_university_fee,omitempty"`
	CourseMappingDisplayFee      *decimal.Decimal      `json:"course_mapping_display_fee,omitempty"`
	CourseMappingCommissionType  *model.CommissionType `json:"course_mapping_commission_type,omitempty" validate:"omitempty,oneof=percentage flat"`
	CourseMappingCommissionValue *decimal.Decimal      `json:"course_mapping_commission_value,omitempty"`
	CourseMappingIntake          *string               `json:"course_mapping_intake,omitempty"`
	CourseMappingIsActive        *bool                 `json:"course_mapping_is_active,omitempty"`
}

type CourseMappingResponse struct {
	CourseMappingID             uuid.UUID `json:"course_mapping_id"`
	CourseMappingUniversityID   uuid.UUID `json:"course_mapping_university_id"`
	CourseMappingMasterCourseID uuid.UUID `json:"course_mapping_master_course_id"`

	CourseMappingUniversityFee   decimal.Decimal      `json:"course_mapping_university_fee"`
	CourseMappingDisplayFee      decimal.Decimal      `json:"course_mapping_display_fee"`
	CourseMappingCommissionType  model.CommissionType `json:"course_mapping_commission_type"`
	CourseMappingCommissionValue decimal.Decimal      `json:"course_mapping_commission_value"`

	CourseMappingIntake   *string    `json:"course_mapping_intake,omitempty"`
	CourseMappingIsActive bool       `json:"course_mapping_is_active"`
	CreatedAt             time.Time  `json:"course_mapping_created_at"`
	UpdatedAt             time.Time  `json:"course_mapping_updated_at"`
	DeletedAt             *time.Time `json:"course_mapping_deleted_at,omitempty"`
}

func ToCourseMappingResponse(m model.UniversityCourseMappingModel) CourseMappingResponse {
	return CourseMappingResponse{
		CourseMappingID:              m.CourseMappingID,
		CourseMappingUniversityID:    m.CourseMappingUniversityID,
		CourseMappingMasterCourseID:  m.CourseMappingMasterCourseID,
		CourseMappingUniversityFee:   m.CourseMappingUniversityFee,
		CourseMappingDisplayFee:      m.CourseMappingDisplayFee,
		CourseMappingCommissionType:  m.CourseMappingCommissionType,
		CourseMappingCommissionValue: m.CourseMappingCommissionValue,
		CourseMappingIntake:          m.CourseMappingIntake,
		CourseMappingIsActive:        m.CourseMappingIsActive,
		CreatedAt:                    m.CourseMappingCreatedAt,
		UpdatedAt:                    m.CourseMappingUpdatedAt,
		DeletedAt:                    ptrTimeFromDeletedAt(m.CourseMappingDeletedAt),
	}
}

func ToCourseMappingResponses(list []model.UniversityCourseMappingModel) []CourseMappingResponse {
	out := make([]CourseMappingResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToCourseMappingResponse(v))
	}
	return out
}

func CourseMappingCreateDTOToModel(d CourseMappingCreateDTO) model.UniversityCourseMappingModel {
	ct := d.CourseMappingCommissionType
	if ct == "" {
		ct = model.CommissionTypePercentage
	}
	return model.UniversityCourseMappingModel{
		CourseMappingUniversityID:    d.CourseMappingUniversityID,
		CourseMappingMasterCourseID:  d.CourseMappingMasterCourseID,
		CourseMappingUniversityFee:   d.CourseMappingUniversityFee,
		CourseMappingDisplayFee:      d.CourseMappingDisplayFee,
		CourseMappingCommissionType:  ct,
		CourseMappingCommissionValue: d.CourseMappingCommissionValue,
		CourseMappingIntake:          d.CourseMappingIntake,
		CourseMappingIsActive:        true,
	}
}

func ApplyCourseMappingUpdate(m *model.UniversityCourseMappingModel, d CourseMappingUpdateDTO) {
	if d.CourseMappingUniversityFee != nil {
		m.CourseMappingUniversityFee = *d.CourseMappingUniversityFee
	}
	if d.CourseMappingDisplayFee != nil {
		m.CourseMappingDisplayFee = *d.CourseMappingDisplayFee
	}
	if d.CourseMappingCommissionType != nil {
		m.CourseMappingCommissionType = *d.CourseMappingCommissionType
	}
	if d.CourseMappingCommissionValue != nil {
		m.CourseMappingCommissionValue = *d.CourseMappingCommissionValue
	}
	if d.CourseMappingIntake != nil {
		m.CourseMappingIntake = d.CourseMappingIntake
	}
	if d.CourseMappingIsActive != nil {
		m.CourseMappingIsActive = *d.CourseMappingIsActive
	}
}
