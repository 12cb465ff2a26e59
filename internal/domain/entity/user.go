// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns patient records. It doubles as the credential record:
// accounts are created once at signup and never modified afterwards.
type User struct {
	ID           uuid.UUID // Unique identifier, referenced by Patient.OwnerID.
	Username     string    // Login name, unique and case-sensitive.
	Email        string    // Contact email, unique across accounts.
	PasswordHash string    // bcrypt hash of the password. Never serialized or logged.
	CreatedAt    time.Time // Timestamp of signup.
}
