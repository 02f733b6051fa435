package dto

import (
	"time"

	"github.com/kerem/schoolhub/internal/app/models"
)

// CreateStudentRequest represents the payload for enrolling a student
type CreateStudentRequest struct {
	Name       string     `json:"name" binding:"required,min=2,max=100"`
	Email      string     `json:"email" binding:"required,email"`
	Phone      string     `json:"phone" binding:"required"`
	Grade      int        `json:"grade" binding:"required,min=1,max=12"`
	DOB        *time.Time `json:"dob,omitempty"`
	Address    *string    `json:"address,omitempty"`
	ParentName *string    `json:"parentName,omitempty"`
	FeeTotal   float64    `json:"feeTotal" binding:"omitempty,gte=0"`
	FeePaid    float64    `json:"feePaid" binding:"omitempty,gte=0"`
	Active     *bool      `json:"active,omitempty"`
}

// UpdateStudentRequest represents a partial update; nil fields are left unchanged
type UpdateStudentRequest struct {
	Name       *string    `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email      *string    `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string    `json:"phone,omitempty"`
	Grade      *int       `json:"grade,omitempty" binding:"omitempty,min=1,max=12"`
	DOB        *time.Time `json:"dob,omitempty"`
	Address    *string    `json:"address,omitempty"`
	ParentName *string    `json:"parentName,omitempty"`
	FeeTotal   *float64   `json:"feeTotal,omitempty" binding:"omitempty,gte=0"`
	FeePaid    *float64   `json:"feePaid,omitempty" binding:"omitempty,gte=0"`
	Active     *bool      `json:"active,omitempty"`
}

// StudentResponse represents a student record with derived fee fields
type StudentResponse struct {
	ID         int64      `json:"id" example:"1"`
	Name       string     `json:"name" example:"Jane Doe"`
	Email      string     `json:"email" example:"jane@school.example"`
	Phone      string     `json:"phone" example:"5551234567"`
	Grade      int        `json:"grade" example:"9"`
	DOB        *time.Time `json:"dob,omitempty"`
	Address    *string    `json:"address,omitempty"`
	ParentName *string    `json:"parentName,omitempty"`
	FeeTotal   float64    `json:"feeTotal" example:"50000"`
	FeePaid    float64    `json:"feePaid" example:"20000"`
	FeeDue     float64    `json:"feeDue" example:"30000"`
	FeeStatus  string     `json:"feeStatus" example:"PARTIAL" enums:"UNPAID,PARTIAL,PAID"`
	Active     bool       `json:"active" example:"true"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Grade:      s.Grade,
		DOB:        s.DOB,
		Address:    s.Address,
		ParentName: s.ParentName,
		FeeTotal:   s.FeeTotal,
		FeePaid:    s.FeePaid,
		FeeDue:     s.FeeDue(),
		FeeStatus:  string(s.FeeStatus()),
		Active:     s.Active,
	}
}

// FromStudents converts a slice of students preserving order
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}
