// file: internals/features/directory/dto/university_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "edubridge_backend/internals/features/directory/model"
)

type UniversityCreateDTO struct {
	UniversityName    string  `json:"university_name" validate:"required,min=2,max=160"`
	UniversityCode    string  `json:"university_code" validate:"required,min=2,max=40"`
	UniversityCountry string  `json:"university_country" validate:"required,max=80"`
	ContactName       *string `json:"university_contact_name,omitempty"`
	ContactEmail      *string `json:"university_contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone      *string `json:"university_contact_phone,omitempty"`
	Website           *string `json:"university_website,omitempty"`
}

type UniversityUpdateDTO struct {
	UniversityName    *string `json:"university_name,omitempty" validate:"omitempty,min=2,max=160"`
	UniversityCountry *string `json:"university_country,omitempty" validate:"omitempty,max=80"`
	ContactName       *string `json:"university_contact_name,omitempty"`
	ContactEmail      *string `json:"university_contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone      *string `json:"university_contact_phone,omitempty"`
	Website           *string `json:"university_website,omitempty"`
	IsActive          *bool   `json:"university_is_active,omitempty"`
}

type UniversityResponse struct {
	UniversityID      uuid.UUID  `json:"university_id"`
	UniversityName    string     `json:"university_name"`
	UniversityCode    string     `json:"university_code"`
	UniversityCountry string     `json:"university_country"`
	ContactName       *string    `json:"university_contact_name,omitempty"`
	ContactEmail      *string    `json:"university_contact_email,omitempty"`
	ContactPhone      *string    `json:"university_contact_phone,omitempty"`
	Website           *string    `json:"university_website,omitempty"`
	IsActive          bool       `json:"university_is_active"`
	CreatedAt         time.Time  `json:"university_created_at"`
	UpdatedAt         time.Time  `json:"university_updated_at"`
	DeletedAt         *time.Time `json:"university_deleted_at,omitempty"`
}

func ToUniversityResponse(m model.UniversityModel) UniversityResponse {
	return UniversityResponse{
		UniversityID:      m.UniversityID,
		UniversityName:    m.UniversityName,
		UniversityCode:    m.UniversityCode,
		UniversityCountry: m.UniversityCountry,
		ContactName:       m.UniversityContactName,
		ContactEmail:      m.UniversityContactEmail,
		ContactPhone:      m.UniversityContactPhone,
		Website:           m.UniversityWebsite,
		IsActive:          m.UniversityIsActive,
		CreatedAt:         m.UniversityCreatedAt,
		UpdatedAt:         m.UniversityUpdatedAt,
		DeletedAt:         ptrTimeFromDeletedAt(m.UniversityDeletedAt),
	}
}

func ToUniversityResponses(list []model.UniversityModel) []UniversityResponse {
	out := make([]UniversityResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToUniversityResponse(v))
	}
	return out
}

func UniversityCreateDTOToModel(d UniversityCreateDTO) model.UniversityModel {
	return model.UniversityModel{
		UniversityName:         d.UniversityName,
		UniversityCode:         d.UniversityCode,
		UniversityCountry:      d.UniversityCountry,
		UniversityContactName:  d.ContactName,
		UniversityContactEmail: d.ContactEmail,
		UniversityContactPhone: d.ContactPhone,
		UniversityWebsite:      d.Website,
		UniversityIsActive:     true,
	}
}

func ApplyUniversityUpdate(m *model.UniversityModel, d UniversityUpdateDTO) {
	if d.UniversityName != nil {
		m.UniversityName = *d.UniversityName
	}
	if d.UniversityCountry != nil {
		m.UniversityCountry = *d.UniversityCountry
	}
	if d.ContactName != nil {
		m.UniversityContactName = d.ContactName
	}
	if d.ContactEmail != nil {
		m.UniversityContactEmail = d.ContactEmail
	}
	if d.ContactPhone != nil {
		m.UniversityContactPhone = d.ContactPhone
	}
	if d.Website != nil {
		m.UniversityWebsite = d.Website
	}
	if d.IsActive != nil {
		m.UniversityIsActive = *d.IsActive
	}
}

/* small utils */

func ptrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
