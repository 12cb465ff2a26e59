package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table. Every query filters on owner_id.
type PatientModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index:idx_patients_owner"`
	FirstName      string    `gorm:"type:varchar(100);not null;index"`
	LastName       string    `gorm:"type:varchar(100);not null;index"`
	DateOfBirth    string    `gorm:"type:varchar(10);not null"`
	Gender         string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(50);not null"`
	Address        string    `gorm:"type:text;not null"`
	MedicalHistory *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"index:idx_patients_owner"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
