package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/pkg/dberrors"
	"github.com/kerem/schoolhub/internal/pkg/helpers"
	"github.com/kerem/schoolhub/internal/pkg/logger"
)

// Teacher error types
var (
	// ErrTeacherNotFound is returned when a teacher is not found.
	ErrTeacherNotFound = ErrNotFound
	// ErrTeacherEmailExists is returned when a teacher with the same email exists.
	ErrTeacherEmailExists = errors.New("teacher with this email already exists")
)

var teacherColumns = []string{"id", "name", "email", "phone", "subject", "salary"}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	var subject sql.NullString

	err := row.Scan(&teacher.ID, &teacher.Name, &teacher.Email, &teacher.Phone,
		&subject, &teacher.Salary)
	if err != nil {
		return nil, err
	}

	teacher.Subject = helpers.StringPtr(subject)
	teacher.Grades = []int{}

	return teacher, nil
}

// Create inserts a new teacher and its grade assignments in one transaction
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	insertSQL, args, err := r.sb.Insert("teachers").
		Columns("name", "email", "phone", "subject", "salary").
		Values(teacher.Name, teacher.Email, teacher.Phone, helpers.GetNullString(teacher.Subject), teacher.Salary).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher SQL")
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, insertSQL, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrTeacherEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}

	if err := r.insertGradeAssignments(ctx, tx, id, teacher.Grades); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// GetByID retrieves a teacher by ID with its grade assignments
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	querySQL, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get teacher by ID SQL")
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, querySQL, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	grades, err := r.gradesForTeachers(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	teacher.Grades = grades[id]
	if teacher.Grades == nil {
		teacher.Grades = []int{}
	}

	return teacher, nil
}

// GetAll retrieves every teacher record with grade assignments, ordered by
// ID. This is the full-scan snapshot the query engine filters over.
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	builder := r.sb.Select(teacherColumns...).
		From("teachers").
		OrderBy("id ASC")
	return r.queryTeachers(ctx, builder)
}

// List retrieves a page of teachers ordered by ID
func (r *TeacherRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Teacher, error) {
	builder := r.sb.Select(teacherColumns...).
		From("teachers").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit))
	return r.queryTeachers(ctx, builder)
}

// Count returns the total number of teacher records
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	countSQL, args, err := r.sb.Select("COUNT(*)").From("teachers").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count teachers query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting teachers")
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}

func (r *TeacherRepository) queryTeachers(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Teacher, error) {
	querySQL, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building teachers SQL")
		return nil, fmt.Errorf("failed to build teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	ids := []int64{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning teacher row")
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
		ids = append(ids, teacher.ID)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating teacher rows")
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	if len(ids) == 0 {
		return teachers, nil
	}

	grades, err := r.gradesForTeachers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range teachers {
		if g, ok := grades[t.ID]; ok {
			t.Grades = g
		}
	}

	return teachers, nil
}

// gradesForTeachers loads grade assignments for a set of teacher IDs
func (r *TeacherRepository) gradesForTeachers(ctx context.Context, ids []int64) (map[int64][]int, error) {
	querySQL, args, err := r.sb.Select("teacher_id", "grade").
		From("grade_assignments").
		Where(squirrel.Eq{"teacher_id": ids}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building grade assignments SQL")
		return nil, fmt.Errorf("failed to build grade assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing grade assignments query")
		return nil, fmt.Errorf("error querying grade assignments: %w", err)
	}
	defer rows.Close()

	grades := map[int64][]int{}
	for rows.Next() {
		var teacherID int64
		var grade int
		if err := rows.Scan(&teacherID, &grade); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade assignment row")
			return nil, fmt.Errorf("error scanning grade assignment row: %w", err)
		}
		grades[teacherID] = append(grades[teacherID], grade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grade assignment rows: %w", err)
	}

	for _, g := range grades {
		sort.Ints(g)
	}

	return grades, nil
}

func (r *TeacherRepository) insertGradeAssignments(ctx context.Context, tx pgx.Tx, teacherID int64, grades []int) error {
	if len(grades) == 0 {
		return nil
	}

	builder := r.sb.Insert("grade_assignments").Columns("teacher_id", "grade")
	for _, g := range grades {
		builder = builder.Values(teacherID, g)
	}

	insertSQL, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert grade assignments SQL")
		return fmt.Errorf("failed to build insert grade assignments query: %w", err)
	}

	if _, err := tx.Exec(ctx, insertSQL, args...); err != nil {
		logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Error inserting grade assignments")
		return fmt.Errorf("error inserting grade assignments: %w", err)
	}

	return nil
}

// Update rewrites a teacher row. When replaceGrades is true the grade
// assignment set is replaced wholesale with teacher.Grades.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher, replaceGrades bool) error {
	updateSQL, args, err := r.sb.Update("teachers").
		SetMap(map[string]interface{}{
			"name":    teacher.Name,
			"email":   teacher.Email,
			"phone":   teacher.Phone,
			"subject": helpers.GetNullString(teacher.Subject),
			"salary":  teacher.Salary,
		}).
		Where(squirrel.Eq{"id": teacher.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update teacher SQL")
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, updateSQL, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrTeacherEmailExists
		}
		logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	if replaceGrades {
		deleteSQL, delArgs, err := r.sb.Delete("grade_assignments").
			Where(squirrel.Eq{"teacher_id": teacher.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete grade assignments query: %w", err)
		}

		if _, err := tx.Exec(ctx, deleteSQL, delArgs...); err != nil {
			logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error deleting grade assignments")
			return fmt.Errorf("error deleting grade assignments: %w", err)
		}

		if err := r.insertGradeAssignments(ctx, tx, teacher.ID, teacher.Grades); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes a teacher by ID; grade assignments go with it via cascade
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	deleteSQL, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete teacher SQL")
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, deleteSQL, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	return nil
}
