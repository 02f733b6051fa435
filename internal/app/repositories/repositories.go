package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for missing rows; entity-specific
// aliases live next to their repositories.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	TeacherRepository *TeacherRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		TeacherRepository: NewTeacherRepository(db),
	}
}
