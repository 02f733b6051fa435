// Package queryengine implements the read-only filter contract over student
// and teacher records. Every function takes a snapshot slice supplied by the
// caller, never touches storage and never mutates its input. Results are
// freshly allocated and ordered by record ID ascending.
package queryengine

import (
	"sort"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/pkg/apperrors"
)

// FeesDue returns students with an outstanding balance (paid < owed).
// This is the union of the unpaid and partially-paid sets.
func FeesDue(students []*models.Student) []*models.Student {
	return filterStudents(students, func(s *models.Student) bool {
		return s.FeeStatus() != models.FeeStatusPaid
	})
}

// FeesUnpaid returns students who have paid nothing against a non-zero fee.
func FeesUnpaid(students []*models.Student) []*models.Student {
	return filterStudents(students, func(s *models.Student) bool {
		return s.FeeStatus() == models.FeeStatusUnpaid
	})
}

// FeesPartial returns students who have paid something but not everything.
func FeesPartial(students []*models.Student) []*models.Student {
	return filterStudents(students, func(s *models.Student) bool {
		return s.FeeStatus() == models.FeeStatusPartial
	})
}

// FeesPaid returns students whose fees are fully settled.
func FeesPaid(students []*models.Student) []*models.Student {
	return filterStudents(students, func(s *models.Student) bool {
		return s.FeeStatus() == models.FeeStatusPaid
	})
}

// StudentsForGrade returns students enrolled in the given grade. An unknown
// grade yields an empty result, not an error.
func StudentsForGrade(students []*models.Student, grade int) []*models.Student {
	return filterStudents(students, func(s *models.Student) bool {
		return s.Grade == grade
	})
}

// SalaryFilter returns teachers whose salary lies within [min, max],
// inclusive. A nil bound is unconstrained. When both bounds are set and
// min > max the filter fails with apperrors.ErrInvalidSalaryRange.
func SalaryFilter(teachers []*models.Teacher, min, max *float64) ([]*models.Teacher, error) {
	if min != nil && max != nil && *min > *max {
		return nil, apperrors.ErrInvalidSalaryRange
	}
	return filterTeachers(teachers, func(t *models.Teacher) bool {
		if min != nil && t.Salary < *min {
			return false
		}
		if max != nil && t.Salary > *max {
			return false
		}
		return true
	}), nil
}

// TeachersForGrade returns teachers assigned to the given grade. An unknown
// grade yields an empty result, not an error.
func TeachersForGrade(teachers []*models.Teacher, grade int) []*models.Teacher {
	return filterTeachers(teachers, func(t *models.Teacher) bool {
		return t.TeachesGrade(grade)
	})
}

func filterStudents(students []*models.Student, keep func(*models.Student) bool) []*models.Student {
	out := make([]*models.Student, 0, len(students))
	for _, s := range students {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func filterTeachers(teachers []*models.Teacher, keep func(*models.Teacher) bool) []*models.Teacher {
	out := make([]*models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
