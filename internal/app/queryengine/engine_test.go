package queryengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/pkg/apperrors"
)

func student(id int64, total, paid float64) *models.Student {
	return &models.Student{ID: id, FeeTotal: total, FeePaid: paid}
}

func teacher(id int64, salary float64, grades ...int) *models.Teacher {
	return &models.Teacher{ID: id, Salary: salary, Grades: grades}
}

func ids[T interface{ *models.Student | *models.Teacher }](recs []T) []int64 {
	out := make([]int64, 0, len(recs))
	for _, r := range recs {
		switch v := any(r).(type) {
		case *models.Student:
			out = append(out, v.ID)
		case *models.Teacher:
			out = append(out, v.ID)
		}
	}
	return out
}

func TestFeeFilters(t *testing.T) {
	students := []*models.Student{
		student(3, 100, 100),
		student(1, 100, 0),
		student(2, 100, 50),
	}

	assert.Equal(t, []int64{1}, ids(FeesUnpaid(students)))
	assert.Equal(t, []int64{2}, ids(FeesPartial(students)))
	assert.Equal(t, []int64{3}, ids(FeesPaid(students)))
	assert.Equal(t, []int64{1, 2}, ids(FeesDue(students)), "fees due is unpaid plus partial, ordered by id")
}

func TestFeeStatusExactlyOne(t *testing.T) {
	cases := []*models.Student{
		student(1, 100, 0),
		student(2, 100, 50),
		student(3, 100, 100),
		student(4, 100, 150), // overpaid
		student(5, 0, 0),     // nothing owed counts as paid
	}

	for _, s := range cases {
		matches := 0
		if len(FeesUnpaid([]*models.Student{s})) == 1 {
			matches++
		}
		if len(FeesPartial([]*models.Student{s})) == 1 {
			matches++
		}
		if len(FeesPaid([]*models.Student{s})) == 1 {
			matches++
		}
		assert.Equalf(t, 1, matches, "student %d must match exactly one status", s.ID)
	}
}

func TestFeesDueIsUnionOfUnpaidAndPartial(t *testing.T) {
	students := []*models.Student{
		student(1, 100, 0),
		student(2, 100, 50),
		student(3, 100, 100),
		student(4, 0, 0),
		student(5, 80, 79.99),
	}

	due := ids(FeesDue(students))
	union := append(ids(FeesUnpaid(students)), ids(FeesPartial(students))...)
	assert.ElementsMatch(t, union, due)
	assert.Equal(t, []int64{1, 2, 5}, due)
}

func TestFeeFiltersEmptyInput(t *testing.T) {
	assert.Empty(t, FeesDue(nil))
	assert.NotNil(t, FeesDue(nil))
	assert.Empty(t, FeesUnpaid([]*models.Student{}))
	assert.Empty(t, FeesPartial([]*models.Student{}))
}

func TestStudentsForGrade(t *testing.T) {
	students := []*models.Student{
		{ID: 2, Grade: 9},
		{ID: 1, Grade: 9},
		{ID: 3, Grade: 10},
	}

	assert.Equal(t, []int64{1, 2}, ids(StudentsForGrade(students, 9)))
	assert.Empty(t, StudentsForGrade(students, 7), "unknown grade yields empty result")
}

func TestSalaryFilter(t *testing.T) {
	teachers := []*models.Teacher{
		teacher(1, 900),
		teacher(2, 1000),
		teacher(3, 1500),
		teacher(4, 2000),
		teacher(5, 2500),
	}

	min, max := 1000.0, 2000.0

	got, err := SalaryFilter(teachers, &min, &max)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, ids(got), "bounds are inclusive")

	got, err = SalaryFilter(teachers, &min, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5}, ids(got))

	got, err = SalaryFilter(teachers, nil, &max)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))

	got, err = SalaryFilter(teachers, nil, nil)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestSalaryFilterInvalidRange(t *testing.T) {
	min, max := 2000.0, 1000.0
	_, err := SalaryFilter([]*models.Teacher{teacher(1, 1500)}, &min, &max)
	require.ErrorIs(t, err, apperrors.ErrInvalidSalaryRange)
}

func TestTeachersForGrade(t *testing.T) {
	teachers := []*models.Teacher{
		teacher(3, 1000, 9, 10),
		teacher(1, 1000, 9),
		teacher(2, 1000, 11),
	}

	assert.Equal(t, []int64{1, 3}, ids(TeachersForGrade(teachers, 9)))
	assert.Empty(t, TeachersForGrade(teachers, 5), "grade with no teachers yields empty result")
	assert.Empty(t, TeachersForGrade(nil, 9))
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	students := []*models.Student{
		student(2, 100, 0),
		student(1, 100, 50),
	}

	_ = FeesDue(students)

	assert.Equal(t, int64(2), students[0].ID, "input order must be preserved")
	assert.Equal(t, int64(1), students[1].ID)
}
