package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/pkg/dberrors"
	"github.com/kerem/schoolhub/internal/pkg/helpers"
	"github.com/kerem/schoolhub/internal/pkg/logger"
)

// Student error types
var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = ErrNotFound
	// ErrStudentEmailExists is returned when a student with the same email exists.
	ErrStudentEmailExists = errors.New("student with this email already exists")
)

var studentColumns = []string{
	"id", "name", "email", "phone", "grade", "dob", "address",
	"parent_name", "fee_total", "fee_paid", "active",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	var dob sql.NullTime
	var address, parentName sql.NullString

	err := row.Scan(&student.ID, &student.Name, &student.Email, &student.Phone,
		&student.Grade, &dob, &address, &parentName,
		&student.FeeTotal, &student.FeePaid, &student.Active)
	if err != nil {
		return nil, err
	}

	if dob.Valid {
		t := dob.Time
		student.DOB = &t
	}
	student.Address = helpers.StringPtr(address)
	student.ParentName = helpers.StringPtr(parentName)

	return student, nil
}

// Create inserts a new student and returns its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "email", "phone", "grade", "dob", "address", "parent_name", "fee_total", "fee_paid", "active").
		Values(student.Name, student.Email, student.Phone, student.Grade, student.DOB,
			helpers.GetNullString(student.Address), helpers.GetNullString(student.ParentName),
			student.FeeTotal, student.FeePaid, student.Active).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrStudentEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves every student record, ordered by ID. This is the full-scan
// snapshot the query engine filters over.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id ASC")
	return r.queryStudents(ctx, builder)
}

// List retrieves a page of students ordered by ID
func (r *StudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit))
	return r.queryStudents(ctx, builder)
}

// Count returns the total number of student records
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building students SQL")
		return nil, fmt.Errorf("failed to build students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update rewrites an existing student row
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":        student.Name,
			"email":       student.Email,
			"phone":       student.Phone,
			"grade":       student.Grade,
			"dob":         student.DOB,
			"address":     helpers.GetNullString(student.Address),
			"parent_name": helpers.GetNullString(student.ParentName),
			"fee_total":   student.FeeTotal,
			"fee_paid":    student.FeePaid,
			"active":      student.Active,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrStudentEmailExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
