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

// StudentStore is the storage contract the student service consumes
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	UpdateStudent(ctx context.Context, id int64, updates dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error

	// Fee queries run the query engine over a full-scan snapshot.
	StudentsWithFeesDue(ctx context.Context) ([]*models.Student, error)
	StudentsUnpaid(ctx context.Context) ([]*models.Student, error)
	StudentsPartiallyPaid(ctx context.Context) ([]*models.Student, error)
	StudentsFullyPaid(ctx context.Context) ([]*models.Student, error)
	StudentsByGrade(ctx context.Context, grade int) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(strings.TrimSpace(student.Name)) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if !validation.IsValidEmail(strings.ToLower(student.Email)) {
		return fmt.Errorf("%w: invalid email address", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidGrade(student.Grade) {
		return fmt.Errorf("%w: grade must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinGrade, models.MaxGrade)
	}

	if student.FeeTotal < 0 || student.FeePaid < 0 {
		return fmt.Errorf("%w: fee amounts cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent creates a new student record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentEmailExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListStudents retrieves a page of students plus the total record count
func (s *studentServiceImpl) ListStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}

	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	return students, total, nil
}

// UpdateStudent applies a partial update to an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, updates dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		student.Name = *updates.Name
	}
	if updates.Email != nil {
		student.Email = *updates.Email
	}
	if updates.Phone != nil {
		student.Phone = *updates.Phone
	}
	if updates.Grade != nil {
		student.Grade = *updates.Grade
	}
	if updates.DOB != nil {
		student.DOB = updates.DOB
	}
	if updates.Address != nil {
		student.Address = updates.Address
	}
	if updates.ParentName != nil {
		student.ParentName = updates.ParentName
	}
	if updates.FeeTotal != nil {
		student.FeeTotal = *updates.FeeTotal
	}
	if updates.FeePaid != nil {
		student.FeePaid = *updates.FeePaid
	}
	if updates.Active != nil {
		student.Active = *updates.Active
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		if errors.Is(err, repositories.ErrStudentEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// StudentsWithFeesDue returns students with an outstanding balance
func (s *studentServiceImpl) StudentsWithFeesDue(ctx context.Context) ([]*models.Student, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.FeesDue(students), nil
}

// StudentsUnpaid returns students who have paid nothing
func (s *studentServiceImpl) StudentsUnpaid(ctx context.Context) ([]*models.Student, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.FeesUnpaid(students), nil
}

// StudentsPartiallyPaid returns students who have paid part of their fees
func (s *studentServiceImpl) StudentsPartiallyPaid(ctx context.Context) ([]*models.Student, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.FeesPartial(students), nil
}

// StudentsFullyPaid returns students whose fees are settled
func (s *studentServiceImpl) StudentsFullyPaid(ctx context.Context) ([]*models.Student, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.FeesPaid(students), nil
}

// StudentsByGrade returns students enrolled in the given grade
func (s *studentServiceImpl) StudentsByGrade(ctx context.Context, grade int) ([]*models.Student, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return queryengine.StudentsForGrade(students, grade), nil
}

func (s *studentServiceImpl) snapshot(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}
