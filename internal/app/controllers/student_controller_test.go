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

// fakeStudentService lets each test plug in just the behavior it needs
type fakeStudentService struct {
	createFn  func(ctx context.Context, student *models.Student) (int64, error)
	getFn     func(ctx context.Context, id int64) (*models.Student, error)
	listFn    func(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	updateFn  func(ctx context.Context, id int64, updates dto.UpdateStudentRequest) (*models.Student, error)
	deleteFn  func(ctx context.Context, id int64) error
	queryFn   func(ctx context.Context) ([]*models.Student, error)
	byGradeFn func(ctx context.Context, grade int) ([]*models.Student, error)
}

func (f *fakeStudentService) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	return f.createFn(ctx, student)
}

func (f *fakeStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return f.getFn(ctx, id)
}

func (f *fakeStudentService) ListStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	return f.listFn(ctx, page, size)
}

func (f *fakeStudentService) UpdateStudent(ctx context.Context, id int64, updates dto.UpdateStudentRequest) (*models.Student, error) {
	return f.updateFn(ctx, id, updates)
}

func (f *fakeStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeStudentService) StudentsWithFeesDue(ctx context.Context) ([]*models.Student, error) {
	return f.queryFn(ctx)
}

func (f *fakeStudentService) StudentsUnpaid(ctx context.Context) ([]*models.Student, error) {
	return f.queryFn(ctx)
}

func (f *fakeStudentService) StudentsPartiallyPaid(ctx context.Context) ([]*models.Student, error) {
	return f.queryFn(ctx)
}

func (f *fakeStudentService) StudentsFullyPaid(ctx context.Context) ([]*models.Student, error) {
	return f.queryFn(ctx)
}

func (f *fakeStudentService) StudentsByGrade(ctx context.Context, grade int) ([]*models.Student, error) {
	return f.byGradeFn(ctx, grade)
}

func newStudentTestRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewStudentController(svc)

	students := router.Group("/api/v1/students")
	students.POST("", ctrl.CreateStudent)
	students.GET("/:id", ctrl.GetStudentByID)
	students.GET("/fees/due", ctrl.GetStudentsWithFeesDue)
	students.GET("/grade/:grade", ctrl.GetStudentsByGrade)
	return router
}

func TestCreateStudentReturnsCreated(t *testing.T) {
	svc := &fakeStudentService{
		createFn: func(_ context.Context, student *models.Student) (int64, error) {
			assert.Equal(t, "Jane Doe", student.Name)
			assert.True(t, student.Active, "active defaults to true when omitted")
			return 7, nil
		},
	}
	router := newStudentTestRouter(svc)

	body := `{"name":"Jane Doe","email":"jane@school.example","phone":"5551234567","grade":9,"feeTotal":50000,"feePaid":20000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data dto.StudentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Data.ID)
	assert.Equal(t, "PARTIAL", resp.Data.FeeStatus)
	assert.Equal(t, float64(30000), resp.Data.FeeDue)
}

func TestCreateStudentRejectsInvalidBody(t *testing.T) {
	svc := &fakeStudentService{
		createFn: func(_ context.Context, _ *models.Student) (int64, error) {
			t.Fatal("service must not be called on binding failure")
			return 0, nil
		},
	}
	router := newStudentTestRouter(svc)

	body := `{"name":"Jane Doe","email":"not-an-email","phone":"5551234567","grade":9}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(dto.ErrorCodeValidationFailed))
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := &fakeStudentService{
		getFn: func(_ context.Context, _ int64) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}
	router := newStudentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), string(dto.ErrorCodeResourceNotFound))
}

func TestGetStudentByIDRejectsBadParam(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStudentsWithFeesDue(t *testing.T) {
	svc := &fakeStudentService{
		queryFn: func(_ context.Context) ([]*models.Student, error) {
			return []*models.Student{
				{ID: 1, Name: "Unpaid", Email: "u@school.example", Grade: 9, FeeTotal: 100, FeePaid: 0, Active: true},
				{ID: 2, Name: "Partial", Email: "p@school.example", Grade: 9, FeeTotal: 100, FeePaid: 50, Active: true},
			}, nil
		},
	}
	router := newStudentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/fees/due", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.StudentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "UNPAID", resp.Data[0].FeeStatus)
	assert.Equal(t, "PARTIAL", resp.Data[1].FeeStatus)
}

func TestGetStudentsByGradeEmptyResult(t *testing.T) {
	svc := &fakeStudentService{
		byGradeFn: func(_ context.Context, grade int) ([]*models.Student, error) {
			assert.Equal(t, 3, grade)
			return []*models.Student{}, nil
		},
	}
	router := newStudentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/grade/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestGetStudentsByGradeRejectsBadParam(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/grade/ninth", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
