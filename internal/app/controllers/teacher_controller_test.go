package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/app/models/dto"
	"github.com/kerem/schoolhub/internal/pkg/apperrors"
)

type fakeTeacherService struct {
	createFn   func(ctx context.Context, teacher *models.Teacher) (int64, error)
	getFn      func(ctx context.Context, id int64) (*models.Teacher, error)
	listFn     func(ctx context.Context, page, size int) ([]*models.Teacher, int64, error)
	updateFn   func(ctx context.Context, id int64, updates dto.UpdateTeacherRequest) (*models.Teacher, error)
	deleteFn   func(ctx context.Context, id int64) error
	bySalaryFn func(ctx context.Context, min, max *float64) ([]*models.Teacher, error)
	byGradeFn  func(ctx context.Context, grade int) ([]*models.Teacher, error)
}

func (f *fakeTeacherService) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	return f.createFn(ctx, teacher)
}

func (f *fakeTeacherService) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return f.getFn(ctx, id)
}

func (f *fakeTeacherService) ListTeachers(ctx context.Context, page, size int) ([]*models.Teacher, int64, error) {
	return f.listFn(ctx, page, size)
}

func (f *fakeTeacherService) UpdateTeacher(ctx context.Context, id int64, updates dto.UpdateTeacherRequest) (*models.Teacher, error) {
	return f.updateFn(ctx, id, updates)
}

func (f *fakeTeacherService) DeleteTeacher(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTeacherService) TeachersBySalary(ctx context.Context, min, max *float64) ([]*models.Teacher, error) {
	return f.bySalaryFn(ctx, min, max)
}

func (f *fakeTeacherService) TeachersByGrade(ctx context.Context, grade int) ([]*models.Teacher, error) {
	return f.byGradeFn(ctx, grade)
}

func newTeacherTestRouter(svc *fakeTeacherService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewTeacherController(svc)

	teachers := router.Group("/api/v1/teachers")
	teachers.POST("", ctrl.CreateTeacher)
	teachers.GET("/:id", ctrl.GetTeacherByID)
	teachers.GET("/salary", ctrl.GetTeachersBySalary)
	teachers.GET("/grade/:grade", ctrl.GetTeachersByGrade)
	return router
}

func TestCreateTeacherReturnsCreated(t *testing.T) {
	svc := &fakeTeacherService{
		createFn: func(_ context.Context, teacher *models.Teacher) (int64, error) {
			assert.Equal(t, []int{9, 10}, teacher.Grades)
			return 3, nil
		},
	}
	router := newTeacherTestRouter(svc)

	body := `{"name":"John Smith","email":"john@school.example","phone":"5559876543","subject":"Math","salary":75000,"grades":[9,10]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teachers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data dto.TeacherResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.ID)
	assert.Equal(t, []int{9, 10}, resp.Data.Grades)
}

func TestGetTeachersBySalaryPassesBounds(t *testing.T) {
	svc := &fakeTeacherService{
		bySalaryFn: func(_ context.Context, min, max *float64) ([]*models.Teacher, error) {
			require.NotNil(t, min)
			require.NotNil(t, max)
			assert.Equal(t, 1000.0, *min)
			assert.Equal(t, 2000.0, *max)
			return []*models.Teacher{{ID: 2, Name: "Mid", Email: "mid@school.example", Salary: 1500}}, nil
		},
	}
	router := newTeacherTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teachers/salary?min=1000&max=2000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.TeacherResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(2), resp.Data[0].ID)
}

func TestGetTeachersBySalaryOmittedBoundsAreNil(t *testing.T) {
	svc := &fakeTeacherService{
		bySalaryFn: func(_ context.Context, min, max *float64) ([]*models.Teacher, error) {
			assert.Nil(t, min)
			assert.Nil(t, max)
			return []*models.Teacher{}, nil
		},
	}
	router := newTeacherTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teachers/salary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTeachersBySalaryInvalidRange(t *testing.T) {
	svc := &fakeTeacherService{
		bySalaryFn: func(_ context.Context, _, _ *float64) ([]*models.Teacher, error) {
			return nil, apperrors.ErrInvalidSalaryRange
		},
	}
	router := newTeacherTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teachers/salary?min=2000&max=1000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(dto.ErrorCodeInvalidRange))
}

func TestGetTeachersBySalaryRejectsMalformedBound(t *testing.T) {
	router := newTeacherTestRouter(&fakeTeacherService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teachers/salary?min=lots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTeachersByGrade(t *testing.T) {
	svc := &fakeTeacherService{
		byGradeFn: func(_ context.Context, grade int) ([]*models.Teacher, error) {
			assert.Equal(t, 9, grade)
			return []*models.Teacher{
				{ID: 1, Name: "First", Email: "first@school.example", Grades: []int{9}},
				{ID: 4, Name: "Second", Email: "second@school.example", Grades: []int{8, 9}},
			}, nil
		},
	}
	router := newTeacherTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teachers/grade/9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.TeacherResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(1), resp.Data[0].ID)
	assert.Equal(t, int64(4), resp.Data[1].ID)
}

func TestDeleteTeacherNotFoundResponse(t *testing.T) {
	svc := &fakeTeacherService{
		deleteFn: func(_ context.Context, _ int64) error {
			return apperrors.ErrTeacherNotFound
		},
	}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/api/v1/teachers/:id", NewTeacherController(svc).DeleteTeacher)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/teachers/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
