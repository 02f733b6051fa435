package models

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID      int64   `json:"id" db:"id" example:"1"`                         // Unique identifier for the teacher record
	Name    string  `json:"name" db:"name" example:"John Smith"`            // Teacher's full name
	Email   string  `json:"email" db:"email" example:"john@school.example"` // Teacher's email (unique)
	Phone   string  `json:"phone" db:"phone" example:"5559876543"`          // Contact phone number
	Subject *string `json:"subject,omitempty" db:"subject"`                 // Primary subject taught
	Salary  float64 `json:"salary" db:"salary" example:"75000"`             // Annual salary

	// Grades taught, populated from the 'grade_assignments' table
	Grades []int `json:"grades" db:"-"`
}

// TeachesGrade reports whether the teacher is assigned to the given grade.
func (t *Teacher) TeachesGrade(grade int) bool {
	for _, g := range t.Grades {
		if g == grade {
			return true
		}
	}
	return false
}
