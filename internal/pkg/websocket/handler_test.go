package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/app/models/dto"
	"github.com/kerem/schoolhub/internal/pkg/apperrors"
)

type fakeStudentService struct {
	createFn      func(ctx context.Context, student *models.Student) (int64, error)
	getFn         func(ctx context.Context, id int64) (*models.Student, error)
	listFn        func(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	updateFn      func(ctx context.Context, id int64, updates dto.UpdateStudentRequest) (*models.Student, error)
	deleteFn      func(ctx context.Context, id int64) error
	feesDueFn     func(ctx context.Context) ([]*models.Student, error)
	unpaidFn      func(ctx context.Context) ([]*models.Student, error)
	partialPaidFn func(ctx context.Context) ([]*models.Student, error)
	fullyPaidFn   func(ctx context.Context) ([]*models.Student, error)
	byGradeFn     func(ctx context.Context, grade int) ([]*models.Student, error)
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
	return f.feesDueFn(ctx)
}

func (f *fakeStudentService) StudentsUnpaid(ctx context.Context) ([]*models.Student, error) {
	return f.unpaidFn(ctx)
}

func (f *fakeStudentService) StudentsPartiallyPaid(ctx context.Context) ([]*models.Student, error) {
	return f.partialPaidFn(ctx)
}

func (f *fakeStudentService) StudentsFullyPaid(ctx context.Context) ([]*models.Student, error) {
	return f.fullyPaidFn(ctx)
}

func (f *fakeStudentService) StudentsByGrade(ctx context.Context, grade int) ([]*models.Student, error) {
	return f.byGradeFn(ctx, grade)
}

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

// dialTestServer builds a gin router with the RPC endpoint backed by the
// given fakes, starts it on an httptest server and dials it.
func dialTestServer(t *testing.T, studentSvc *fakeStudentService, teacherSvc *fakeTeacherService) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lgr := zerolog.Nop()
	hub := NewHub(lgr)
	go hub.Run()

	dispatcher := NewDispatcher(studentSvc, teacherSvc, lgr)
	handler := NewHandler(hub, dispatcher, lgr)

	router := gin.New()
	router.GET("/ws", handler.HandleConnection)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, request string) Response {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(request)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(frame, &resp))
	return resp
}

func TestGetStudentOverWebSocket(t *testing.T) {
	studentSvc := &fakeStudentService{
		getFn: func(_ context.Context, id int64) (*models.Student, error) {
			assert.Equal(t, int64(5), id)
			return &models.Student{
				ID: 5, Name: "Jane Doe", Email: "jane@school.example",
				Phone: "5551234567", Grade: 9,
				FeeTotal: 50000, FeePaid: 20000, Active: true,
			}, nil
		},
	}
	conn := dialTestServer(t, studentSvc, &fakeTeacherService{})

	resp := roundTrip(t, conn, `{"id":7,"method":"students.get","params":{"studentId":5}}`)

	require.Nil(t, resp.Error)
	assert.Equal(t, json.RawMessage(`7`), resp.ID)

	payload, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var student dto.StudentResponse
	require.NoError(t, json.Unmarshal(payload, &student))
	assert.Equal(t, int64(5), student.ID)
	assert.Equal(t, "PARTIAL", student.FeeStatus)
	assert.Equal(t, 30000.0, student.FeeDue)
}

func TestStudentNotFoundYieldsErrorEnvelope(t *testing.T) {
	studentSvc := &fakeStudentService{
		getFn: func(_ context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}
	conn := dialTestServer(t, studentSvc, &fakeTeacherService{})

	resp := roundTrip(t, conn, `{"id":"abc","method":"students.get","params":{"studentId":99}}`)

	require.NotNil(t, resp.Error)
	assert.Nil(t, resp.Result)
	assert.Equal(t, json.RawMessage(`"abc"`), resp.ID)
	assert.Equal(t, "student not found", resp.Error.Message)
}

func TestSalaryQueryOverWebSocket(t *testing.T) {
	teacherSvc := &fakeTeacherService{
		bySalaryFn: func(_ context.Context, min, max *float64) ([]*models.Teacher, error) {
			require.NotNil(t, min)
			require.NotNil(t, max)
			if *min > *max {
				return nil, apperrors.ErrInvalidSalaryRange
			}
			return []*models.Teacher{{ID: 2, Name: "Mid", Email: "mid@school.example", Salary: 1500}}, nil
		},
	}
	conn := dialTestServer(t, &fakeStudentService{}, teacherSvc)

	resp := roundTrip(t, conn, `{"id":1,"method":"teachers.by_salary","params":{"min":1000,"max":2000}}`)
	require.Nil(t, resp.Error)

	payload, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var teachers []dto.TeacherResponse
	require.NoError(t, json.Unmarshal(payload, &teachers))
	require.Len(t, teachers, 1)
	assert.Equal(t, int64(2), teachers[0].ID)

	resp = roundTrip(t, conn, `{"id":2,"method":"teachers.by_salary","params":{"min":2000,"max":1000}}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid salary range: min exceeds max", resp.Error.Message)
}

func TestUnknownMethodYieldsErrorEnvelope(t *testing.T) {
	conn := dialTestServer(t, &fakeStudentService{}, &fakeTeacherService{})

	resp := roundTrip(t, conn, `{"id":3,"method":"students.enroll"}`)

	require.NotNil(t, resp.Error)
	assert.Equal(t, "unknown method 'students.enroll'", resp.Error.Message)
}

func TestEachRequestGetsOwnResponseFrame(t *testing.T) {
	studentSvc := &fakeStudentService{
		deleteFn: func(_ context.Context, id int64) error { return nil },
	}
	conn := dialTestServer(t, studentSvc, &fakeTeacherService{})

	first := roundTrip(t, conn, `{"id":10,"method":"students.delete","params":{"studentId":1}}`)
	second := roundTrip(t, conn, `{"id":11,"method":"students.delete","params":{"studentId":2}}`)

	require.Nil(t, first.Error)
	require.Nil(t, second.Error)
	assert.Equal(t, json.RawMessage(`10`), first.ID)
	assert.Equal(t, json.RawMessage(`11`), second.ID)

	payload, err := json.Marshal(first.Result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(payload))
}

func TestHubTracksConnectionLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	lgr := zerolog.Nop()
	hub := NewHub(lgr)
	go hub.Run()

	dispatcher := NewDispatcher(&fakeStudentService{}, &fakeTeacherService{}, lgr)
	handler := NewHandler(hub, dispatcher, lgr)

	router := gin.New()
	router.GET("/ws", handler.HandleConnection)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestMalformedFrameYieldsErrorEnvelope(t *testing.T) {
	conn := dialTestServer(t, &fakeStudentService{}, &fakeTeacherService{})

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{not json`)))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(frame, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "invalid request")
}
