package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64      `json:"id" db:"id" example:"1"`                          // Unique identifier for the student record
	Name       string     `json:"name" db:"name" example:"Jane Doe"`               // Student's full name
	Email      string     `json:"email" db:"email" example:"jane@school.example"`  // Student's email (unique)
	Phone      string     `json:"phone" db:"phone" example:"5551234567"`           // Contact phone number
	Grade      int        `json:"grade" db:"grade" example:"9"`                    // Grade the student belongs to
	DOB        *time.Time `json:"dob,omitempty" db:"dob"`                          // Date of birth
	Address    *string    `json:"address,omitempty" db:"address"`                  // Home address
	ParentName *string    `json:"parentName,omitempty" db:"parent_name"`           // Parent or guardian name
	FeeTotal   float64    `json:"feeTotal" db:"fee_total" example:"50000"`         // Total fee owed for the year
	FeePaid    float64    `json:"feePaid" db:"fee_paid" example:"20000"`           // Amount paid so far
	Active     bool       `json:"active" db:"active" example:"true"`               // Whether the student is still enrolled
}

// FeeDue returns the outstanding balance, never negative.
func (s *Student) FeeDue() float64 {
	due := s.FeeTotal - s.FeePaid
	if due < 0 {
		return 0
	}
	return due
}

// FeeStatus classifies the student's payment state. The three states are
// mutually exclusive: a student with nothing owed counts as PAID even when
// nothing was paid.
func (s *Student) FeeStatus() FeeStatus {
	switch {
	case s.FeePaid >= s.FeeTotal:
		return FeeStatusPaid
	case s.FeePaid == 0:
		return FeeStatusUnpaid
	default:
		return FeeStatusPartial
	}
}
