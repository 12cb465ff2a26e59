package handler

import (
	"time"

	"patientapp/internal/domain/entity"

	"github.com/google/uuid"
)

// SignupRequest is the body of POST /users/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest accepts the OAuth2 password form as well as JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// CreatePatientRequest is the body of POST /patients/.
type CreatePatientRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=100"`
	LastName       string  `json:"last_name" validate:"required,max=100"`
	DateOfBirth    string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender         string  `json:"gender" validate:"required,max=50"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	Phone          string  `json:"phone" validate:"required,max=50"`
	Address        string  `json:"address" validate:"required"`
	MedicalHistory *string `json:"medical_history,omitempty"`
}

// UpdatePatientRequest is the body of PUT /patients/:id. Absent fields are left unchanged.
type UpdatePatientRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,min=1,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=1,max=50"`
	Address        *string `json:"address,omitempty" validate:"omitempty,min=1"`
	MedicalHistory *string `json:"medical_history,omitempty"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PatientResponse is the public shape of a patient record.
type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	MedicalHistory *string   `json:"medical_history"`
	OwnerID        uuid.UUID `json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toPatientResponse(p *entity.Patient) *PatientResponse {
	return &PatientResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DateOfBirth:    p.DateOfBirth,
		Gender:         p.Gender,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		OwnerID:        p.OwnerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
