package dto

import "github.com/kerem/schoolhub/internal/app/models"

// CreateTeacherRequest represents the payload for hiring a teacher
type CreateTeacherRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required"`
	Subject *string `json:"subject,omitempty"`
	Salary  float64 `json:"salary" binding:"omitempty,gte=0"`
	Grades  []int   `json:"grades" binding:"omitempty,dive,min=1,max=12"`
}

// UpdateTeacherRequest represents a partial update; nil fields are left
// unchanged. A non-nil Grades replaces the assignment set wholesale.
type UpdateTeacherRequest struct {
	Name    *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email   *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string  `json:"phone,omitempty"`
	Subject *string  `json:"subject,omitempty"`
	Salary  *float64 `json:"salary,omitempty" binding:"omitempty,gte=0"`
	Grades  *[]int   `json:"grades,omitempty" binding:"omitempty,dive,min=1,max=12"`
}

// TeacherResponse represents a teacher record with its grade assignments
type TeacherResponse struct {
	ID      int64   `json:"id" example:"1"`
	Name    string  `json:"name" example:"John Smith"`
	Email   string  `json:"email" example:"john@school.example"`
	Phone   string  `json:"phone" example:"5559876543"`
	Subject *string `json:"subject,omitempty" example:"Math"`
	Salary  float64 `json:"salary" example:"75000"`
	Grades  []int   `json:"grades" example:"9,10"`
}

// FromTeacher converts a models.Teacher to a TeacherResponse
func FromTeacher(t *models.Teacher) TeacherResponse {
	if t == nil {
		return TeacherResponse{}
	}
	grades := t.Grades
	if grades == nil {
		grades = []int{}
	}
	return TeacherResponse{
		ID:      t.ID,
		Name:    t.Name,
		Email:   t.Email,
		Phone:   t.Phone,
		Subject: t.Subject,
		Salary:  t.Salary,
		Grades:  grades,
	}
}

// FromTeachers converts a slice of teachers preserving order
func FromTeachers(teachers []*models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, FromTeacher(t))
	}
	return out
}
