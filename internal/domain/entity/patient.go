package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a record owned by exactly one User.
type Patient struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID // Set from the authenticated user at creation, never changed.
	FirstName      string
	LastName       string
	DateOfBirth    string // YYYY-MM-DD, stored as entered.
	Gender         string
	Email          string
	Phone          string
	Address        string
	MedicalHistory *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOwnedBy reports whether the record belongs to the given user.
func (p *Patient) IsOwnedBy(userID uuid.UUID) bool {
	return p != nil && p.OwnerID == userID
}
