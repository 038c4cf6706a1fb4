// file: internals/features/directory/dto/consultancy_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "edubridge_backend/internals/features/directory/model"
)

type ConsultancyCreateDTO struct {
	ConsultancyName string  `json:"consultancy_name" validate:"required,min=2,max=160"`
	ConsultancyCode string  `json:"consultancy_code" validate:"required,min=2,max=40"`
	ContactName     *string `json:"consultancy_contact_name,omitempty"`
	ContactEmail    *string `json:"consultancy_contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone    *string `json:"consultancy_contact_phone,omitempty"`
	Address         *string `json:"consultancy_address,omitempty"`

	// Optional; defaults applied when nil.
	Permissions *model.ConsultancyPermissionSet `json:"consultancy_permissions,omitempty"`
}

type ConsultancyUpdateDTO struct {
	ConsultancyName *string                         `json:"consultancy_name,omitempty" validate:"omitempty,min=2,max=160"`
	ContactName     *string                         `json:"consultancy_contact_name,omitempty"`
	ContactEmail    *string                         `json:"consultancy_contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone    *string                         `json:"consultancy_contact_phone,omitempty"`
	Address         *string                         `json:"consultancy_address,omitempty"`
	Permissions     *model.ConsultancyPermissionSet `json:"consultancy_permissions,omitempty"`
	IsActive        *bool                           `json:"consultancy_is_active,omitempty"`
}

type ConsultancyResponse struct {
	ConsultancyID   uuid.UUID                      `json:"consultancy_id"`
	ConsultancyName string                         `json:"consultancy_name"`
	ConsultancyCode string                         `json:"consultancy_code"`
	ContactName     *string                        `json:"consultancy_contact_name,omitempty"`
	ContactEmail    *string                        `json:"consultancy_contact_email,omitempty"`
	ContactPhone    *string                        `json:"consultancy_contact_phone,omitempty"`
	Address         *string                        `json:"consultancy_address,omitempty"`
	Permissions     model.ConsultancyPermissionSet `json:"consultancy_permissions"`
	IsActive        bool                           `json:"consultancy_is_active"`
	CreatedAt       time.Time                      `json:"consultancy_created_at"`
	UpdatedAt       time.Time                      `json:"consultancy_updated_at"`
	DeletedAt       *time.Time                     `json:"consultancy_deleted_at,omitempty"`
}

func ToConsultancyResponse(m model.ConsultancyModel) ConsultancyResponse {
	return ConsultancyResponse{
		ConsultancyID:   m.ConsultancyID,
		ConsultancyName: m.ConsultancyName,
		ConsultancyCode: m.ConsultancyCode,
		ContactName:     m.ConsultancyContactName,
		ContactEmail:    m.ConsultancyContactEmail,
		ContactPhone:    m.ConsultancyContactPhone,
		Address:         m.ConsultancyAddress,
		Permissions:     m.ConsultancyPermissions.Data(),
		IsActive:        m.ConsultancyIsActive,
		CreatedAt:       m.ConsultancyCreatedAt,
		UpdatedAt:       m.ConsultancyUpdatedAt,
		DeletedAt:       ptrTimeFromDeletedAt(m.ConsultancyDeletedAt),
	}
}

func ToConsultancyResponses(list []model.ConsultancyModel) []ConsultancyResponse {
	out := make([]ConsultancyResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToConsultancyResponse(v))
	}
	return out
}

func ConsultancyCreateDTOToModel(d ConsultancyCreateDTO) model.ConsultancyModel {
	perms := model.DefaultConsultancyPermissions()
	if d.Permissions != nil {
		perms = *d.Permissions
	}
	return model.ConsultancyModel{
		ConsultancyName:         d.ConsultancyName,
		ConsultancyCode:         d.ConsultancyCode,
		ConsultancyContactName:  d.ContactName,
		ConsultancyContactEmail: d.ContactEmail,
		ConsultancyContactPhone: d.ContactPhone,
		ConsultancyAddress:      d.Address,
		ConsultancyPermissions:  datatypes.NewJSONType(perms),
		ConsultancyIsActive:     true,
	}
}

func ApplyConsultancyUpdate(m *model.ConsultancyModel, d ConsultancyUpdateDTO) {
	if d.ConsultancyName != nil {
		m.ConsultancyName = *d.ConsultancyName
	}
	if d.ContactName != nil {
		m.ConsultancyContactName = d.ContactName
	}
	if d.ContactEmail != nil {
		m.ConsultancyContactEmail = d.ContactEmail
	}
	if d.ContactPhone != nil {
		m.ConsultancyContactPhone = d.ContactPhone
	}
	if d.Address != nil {
		m.ConsultancyAddress = d.Address
	}
	if d.Permissions != nil {
		m.ConsultancyPermissions = datatypes.NewJSONType(*d.Permissions)
	}
	if d.IsActive != nil {
		m.ConsultancyIsActive = *d.IsActive
	}
}
