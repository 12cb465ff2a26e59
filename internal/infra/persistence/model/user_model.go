package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique constraint names, matched against driver errors to tell signup conflicts apart.
const (
	UniqueUsersUsername = "uq_users_username"
	UniqueUsersEmail    = "uq_users_email"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_users_username"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Patients []PatientModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
