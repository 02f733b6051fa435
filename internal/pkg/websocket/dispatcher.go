package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/app/models/dto"
	"github.com/kerem/schoolhub/internal/app/services"
)

// Dispatcher routes RPC requests to the student and teacher services.
type Dispatcher struct {
	studentService services.StudentService
	teacherService services.TeacherService
	logger         zerolog.Logger
}

// NewDispatcher creates a new RPC dispatcher
func NewDispatcher(
	studentService services.StudentService,
	teacherService services.TeacherService,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		studentService: studentService,
		teacherService: teacherService,
		logger:         logger,
	}
}

type studentIDParams struct {
	StudentID int64 `json:"studentId"`
}

type studentUpdateParams struct {
	StudentID int64                    `json:"studentId"`
	Updates   dto.UpdateStudentRequest `json:"updates"`
}

type teacherIDParams struct {
	TeacherID int64 `json:"teacherId"`
}

type teacherUpdateParams struct {
	TeacherID int64                    `json:"teacherId"`
	Updates   dto.UpdateTeacherRequest `json:"updates"`
}

type gradeParams struct {
	Grade int `json:"grade"`
}

type listParams struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

type salaryParams struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Dispatch parses a raw request frame and executes the named method.
// It always produces a response: failures come back as error envelopes,
// never as a dropped frame.
func (d *Dispatcher) Dispatch(ctx context.Context, raw []byte) Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return rpcError(nil, "invalid request: "+err.Error())
	}

	result, err := d.call(ctx, req.Method, req.Params)
	if err != nil {
		d.logger.Debug().
			Err(err).
			Str("method", req.Method).
			Msg("RPC call failed")
		return rpcError(req.ID, err.Error())
	}
	return rpcResult(req.ID, result)
}

func (d *Dispatcher) call(ctx context.Context, method string, params json.RawMessage) (interface{}, error) {
	switch method {
	case "students.create":
		return d.createStudent(ctx, params)
	case "students.get":
		var p studentIDParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		student, err := d.studentService.GetStudentByID(ctx, p.StudentID)
		if err != nil {
			return nil, err
		}
		return dto.FromStudent(student), nil
	case "students.update":
		var p studentUpdateParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		student, err := d.studentService.UpdateStudent(ctx, p.StudentID, p.Updates)
		if err != nil {
			return nil, err
		}
		return dto.FromStudent(student), nil
	case "students.delete":
		var p studentIDParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		if err := d.studentService.DeleteStudent(ctx, p.StudentID); err != nil {
			return nil, err
		}
		return map[string]bool{"ok": true}, nil
	case "students.list":
		var p listParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		students, _, err := d.studentService.ListStudents(ctx, p.Page, p.Size)
		if err != nil {
			return nil, err
		}
		return dto.FromStudents(students), nil
	case "students.fee_due":
		return d.studentQuery(ctx, d.studentService.StudentsWithFeesDue)
	case "students.unpaid":
		return d.studentQuery(ctx, d.studentService.StudentsUnpaid)
	case "students.partial_paid":
		return d.studentQuery(ctx, d.studentService.StudentsPartiallyPaid)
	case "students.fully_paid":
		return d.studentQuery(ctx, d.studentService.StudentsFullyPaid)
	case "students.by_grade":
		var p gradeParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		students, err := d.studentService.StudentsByGrade(ctx, p.Grade)
		if err != nil {
			return nil, err
		}
		return dto.FromStudents(students), nil

	case "teachers.create":
		return d.createTeacher(ctx, params)
	case "teachers.get":
		var p teacherIDParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		teacher, err := d.teacherService.GetTeacherByID(ctx, p.TeacherID)
		if err != nil {
			return nil, err
		}
		return dto.FromTeacher(teacher), nil
	case "teachers.update":
		var p teacherUpdateParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		teacher, err := d.teacherService.UpdateTeacher(ctx, p.TeacherID, p.Updates)
		if err != nil {
			return nil, err
		}
		return dto.FromTeacher(teacher), nil
	case "teachers.delete":
		var p teacherIDParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		if err := d.teacherService.DeleteTeacher(ctx, p.TeacherID); err != nil {
			return nil, err
		}
		return map[string]bool{"ok": true}, nil
	case "teachers.list":
		var p listParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		teachers, _, err := d.teacherService.ListTeachers(ctx, p.Page, p.Size)
		if err != nil {
			return nil, err
		}
		return dto.FromTeachers(teachers), nil
	case "teachers.by_salary":
		var p salaryParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		teachers, err := d.teacherService.TeachersBySalary(ctx, p.Min, p.Max)
		if err != nil {
			return nil, err
		}
		return dto.FromTeachers(teachers), nil
	case "teachers.by_grade":
		var p gradeParams
		if err := parseParams(params, &p); err != nil {
			return nil, err
		}
		teachers, err := d.teacherService.TeachersByGrade(ctx, p.Grade)
		if err != nil {
			return nil, err
		}
		return dto.FromTeachers(teachers), nil
	}

	return nil, fmt.Errorf("unknown method '%s'", method)
}

func (d *Dispatcher) createStudent(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req dto.CreateStudentRequest
	if err := parseParams(params, &req); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	student := &models.Student{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Grade:      req.Grade,
		DOB:        req.DOB,
		Address:    req.Address,
		ParentName: req.ParentName,
		FeeTotal:   req.FeeTotal,
		FeePaid:    req.FeePaid,
		Active:     active,
	}

	id, err := d.studentService.CreateStudent(ctx, student)
	if err != nil {
		return nil, err
	}
	student.ID = id
	return dto.FromStudent(student), nil
}

func (d *Dispatcher) createTeacher(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req dto.CreateTeacherRequest
	if err := parseParams(params, &req); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Salary:  req.Salary,
		Grades:  req.Grades,
	}

	id, err := d.teacherService.CreateTeacher(ctx, teacher)
	if err != nil {
		return nil, err
	}
	teacher.ID = id
	return dto.FromTeacher(teacher), nil
}

func (d *Dispatcher) studentQuery(ctx context.Context, query func(context.Context) ([]*models.Student, error)) (interface{}, error) {
	students, err := query(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromStudents(students), nil
}

// parseParams decodes params into dest; an absent params field means all
// fields stay at their zero values.
func parseParams(params json.RawMessage, dest interface{}) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, dest); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
