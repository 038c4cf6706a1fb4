// file: internals/features/admissions/dto/admission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	model "edubridge_backend/internals/features/admissions/model"
)

type AdmissionCreateDTO struct {
	StudentName  string  `json:"admission_student_name" validate:"required,min=2,max=160"`
	StudentEmail *string `json:"admission_student_email,omitempty" validate:"omitempty,email"`
	StudentPhone *string `json:"admission_student_phone,omitempty"`

	UniversityID    uuid.UUID  `json:"admission_university_id" validate:"required"`
	CourseMappingID uuid.UUID  `json:"admission_course_mapping_id" validate:"required"`
	ConsultancyID   uuid.UUID  `json:"admission_consultancy_id" validate:"required"`
	AgentID         *uuid.UUID `json:"admission_agent_id,omitempty"`

	TotalFee decimal.Decimal `json:"admission_total_fee" validate:"required"`
	Intake   *string         `json:"admission_intake,omitempty"`
	Notes    *string         `json:"admission_notes,omitempty"`
}

type AdmissionReviewDTO struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject revert"`
	// Reason is mandatory for reject and revert; documents optional on approve.
	Reason    string         `json:"reason,omitempty"`
	Documents datatypes.JSON `json:"documents,omitempty"`
}

type AdmissionResponse struct {
	AdmissionID  uuid.UUID `json:"admission_id"`
	StudentName  string    `json:"admission_student_name"`
	StudentEmail *string   `json:"admission_student_email,omitempty"`
	StudentPhone *string   `json:"admission_student_phone,omitempty"`

	UniversityID    uuid.UUID  `json:"admission_university_id"`
	CourseMappingID uuid.UUID  `json:"admission_course_mapping_id"`
	ConsultancyID   uuid.UUID  `json:"admission_consultancy_id"`
	AgentID         *uuid.UUID `json:"admission_agent_id,omitempty"`

	TotalFee    decimal.Decimal `json:"admission_total_fee"`
	FeePaid     decimal.Decimal `json:"admission_fee_paid"`
	Outstanding decimal.Decimal `json:"admission_outstanding_fee"`

	Status       model.AdmissionStatus `json:"admission_status"`
	ReviewedBy   *uuid.UUID            `json:"admission_reviewed_by,omitempty"`
	ReviewedAt   *time.Time            `json:"admission_reviewed_at,omitempty"`
	ReviewReason *string               `json:"admission_review_reason,omitempty"`
	Documents    datatypes.JSON        `json:"admission_documents,omitempty"`

	Intake *string `json:"admission_intake,omitempty"`
	Notes  *string `json:"admission_notes,omitempty"`

	CreatedAt time.Time `json:"admission_created_at"`
	UpdatedAt time.Time `json:"admission_updated_at"`
}

func ToAdmissionResponse(m model.AdmissionModel) AdmissionResponse {
	return AdmissionResponse{
		AdmissionID:     m.AdmissionID,
		StudentName:     m.AdmissionStudentName,
		StudentEmail:    m.AdmissionStudentEmail,
		StudentPhone:    m.AdmissionStudentPhone,
		UniversityID:    m.AdmissionUniversityID,
		CourseMappingID: m.AdmissionCourseMappingID,
		ConsultancyID:   m.AdmissionConsultancyID,
		AgentID:         m.AdmissionAgentID,
		TotalFee:        m.AdmissionTotalFee,
		FeePaid:         m.AdmissionFeePaid,
		Outstanding:     m.OutstandingFee(),
		Status:          m.AdmissionStatus,
		ReviewedBy:      m.AdmissionReviewedBy,
		ReviewedAt:      m.AdmissionReviewedAt,
		ReviewReason:    m.AdmissionReviewReason,
		Documents:       m.AdmissionDocuments,
		Intake:          m.AdmissionIntake,
		Notes:           m.AdmissionNotes,
		CreatedAt:       m.AdmissionCreatedAt,
		UpdatedAt:       m.AdmissionUpdatedAt,
	}
}

func ToAdmissionResponses(list []model.AdmissionModel) []AdmissionResponse {
	out := make([]AdmissionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAdmissionResponse(v))
	}
	return out
}

func AdmissionCreateDTOToModel(d AdmissionCreateDTO) model.AdmissionModel {
	return model.AdmissionModel{
		AdmissionStudentName:     d.StudentName,
		AdmissionStudentEmail:    d.StudentEmail,
		AdmissionStudentPhone:    d.StudentPhone,
		AdmissionUniversityID:    d.UniversityID,
		AdmissionCourseMappingID: d.CourseMappingID,
		AdmissionConsultancyID:   d.ConsultancyID,
		AdmissionAgentID:         d.AgentID,
		AdmissionTotalFee:        d.TotalFee,
		AdmissionFeePaid:         decimal.Zero,
		AdmissionStatus:          model.AdmissionStatusPending,
		AdmissionIntake:          d.Intake,
		AdmissionNotes:           d.Notes,
	}
}
