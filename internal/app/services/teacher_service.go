package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/app/models/dto"
	"github.com/kerem/schoolhub/internal/app/queryengine"
	"github.com/kerem/schoolhub/internal/app/repositories"
	"github.com/kerem/schoolhub/internal/pkg/apperrors"
	"github.com/kerem/schoolhub/internal/pkg/helpers"
	"github.com/kerem/schoolhub/internal/pkg/validation"
)

// TeacherStore is the storage contract the teacher service consumes
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Teacher, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, teacher *models.Teacher, replaceGrades bool) error
	Delete(ctx context.Context, id int64) error
}

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	ListTeachers(ctx context.Context, page, size int) ([]*models.Teacher, int64, error)
	UpdateTeacher(ctx context.Context, id int64, updates dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error

	// Queries run the query engine over a full-scan snapshot.
	TeachersBySalary(ctx context.Context, min, max *float64) ([]*models.Teacher, error)
	TeachersByGrade(ctx context.Context, grade int) ([]*models.Teacher, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherRepo TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo TeacherStore) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
	}
}

// validateTeacher validates teacher data before database operations
func (s *teacherServiceImpl) validateTeacher(teacher *models.Teacher) error {
	if teacher == nil {
		return fmt.Errorf("%w: teacher is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(strings.TrimSpace(teacher.Name)) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if !validation.IsValidEmail(strings.ToLower(teacher.Email)) {
		return fmt.Errorf("%w: invalid email address", apperrors.ErrValidationFailed)
	}

	if teacher.Salary < 0 {
		return fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidationFailed)
	}

	if !validation.AreValidGrades(teacher.Grades) {
		return fmt.Errorf("%w: grades must be unique values between %d and %d",
			apperrors.ErrValidationFailed, models.MinGrade, models.MaxGrade)
	}

	return nil
}

// CreateTeacher creates a new teacher record with its grade assignments
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	if err := s.validateTeacher(teacher); err != nil {
		return 0, err
	}

	id, err := s.teacherRepo.Create(ctx, teacher)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherEmailExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}
	return id, nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// ListTeachers retrieves a page of teachers plus the total record count
func (s *teacherServiceImpl) ListTeachers(ctx context.Context, page, size int) ([]*models.Teacher, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	teachers, err := s.teacherRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing teachers: %w", err)
	}

	total, err := s.teacherRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting teachers: %w", err)
	}

	return teachers, total, nil
}

// UpdateTeacher applies a partial update to an existing teacher
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, updates dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.GetTeacherByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		teacher.Name = *updates.Name
	}
	if updates.Email != nil {
		teacher.Email = *updates.Email
	}
	if updates.Phone != nil {
		teacher.Phone = *updates.Phone
	}
	if updates.Subject != nil {
		teacher.Subject = updates.Subject
	}
	if updates.Salary != nil {
		teacher.Salary = *updates.Salary
	}
	replaceGrades := updates.Grades != nil
	if replaceGrades {
		teacher.Grades = *updates.Grades
	}

	if err := s.validateTeacher(teacher); err != nil {
		return nil, err
	}

	if err := s.teacherRepo.Update(ctx, teacher, replaceGrades); err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		if errors.Is(err, repositories.ErrTeacherEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error updating teacher: %w", err)
	}

	return teacher, nil
}

// DeleteTeacher deletes a teacher by ID
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	err := s.teacherRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	return nil
}

// TeachersBySalary returns teachers whose salary falls within the bounds.
// The apperrors.ErrInvalidSalaryRange failure from the engine is surfaced
// untouched so the HTTP layer can map it.
func (s *teacherServiceImpl) TeachersBySalary(ctx context.Context, min, max *float64) ([]*models.Teacher, error) {
	teachers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.SalaryFilter(teachers, min, max)
}

// TeachersByGrade returns teachers assigned to the given grade
func (s *teacherServiceImpl) TeachersByGrade(ctx context.Context, grade int) ([]*models.Teacher, error) {
	teachers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.TeachersForGrade(teachers, grade), nil
}

func (s *teacherServiceImpl) snapshot(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}
