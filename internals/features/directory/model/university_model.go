// file: internals/features/directory/model/university_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UniversityModel struct {
	// PK
	UniversityID uuid.UUID `gorm:"column:university_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"university_id"`

	UniversityName    string `gorm:"column:university_name;type:varchar(160);not null;index" json:"university_name"`
	UniversityCode    string `gorm:"column:university_code;type:varchar(40);not null;uniqueIndex" json:"university_code"`
	UniversityCountry string `gorm:"column:university_country;type:varchar(80);index" json:"university_country"`

	UniversityContactName  *string `gorm:"column:university_contact_name;type:varchar(120)" json:"university_contact_name,omitempty"`
	UniversityContactEmail *string `gorm:"column:university_contact_email;type:varchar(160)" json:"university_contact_email,omitempty"`
	UniversityContactPhone *string `gorm:"column:university_contact_phone;type:varchar(40)" json:"university_contact_phone,omitempty"`
	UniversityWebsite      *string `gorm:"column:university_website;type:varchar(200)" json:"university_website,omitempty"`

	UniversityIsActive bool `gorm:"column:university_is_active;not null;default:true;index" json:"university_is_active"`

	// Audit
	UniversityCreatedAt time.Time      `gorm:"column:university_created_at;type:timestamptz;not null;default:now();index" json:"university_created_at"`
	UniversityUpdatedAt time.Time      `gorm:"column:university_updated_at;type:timestamptz;not null;default:now()" json:"university_updated_at"`
	UniversityDeletedAt gorm.DeletedAt `gorm:"column:university_deleted_at;type:timestamptz;index" json:"-"`
}

func (UniversityModel) TableName() string { return "universities" }

func (m *UniversityModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.UniversityCreatedAt.IsZero() {
		m.UniversityCreatedAt = now
	}
	m.UniversityUpdatedAt = now
	return nil
}

func (m *UniversityModel) BeforeUpdate(tx *gorm.DB) error {
	m.UniversityUpdatedAt = time.Now()
	return nil
}
