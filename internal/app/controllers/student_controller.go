package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kerem/schoolhub/internal/app/models"
	"github.com/kerem/schoolhub/internal/app/models/dto"
	"github.com/kerem/schoolhub/internal/app/services"
	"github.com/kerem/schoolhub/internal/middleware"
	"github.com/kerem/schoolhub/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student enrollment
// @Summary Enroll a new student
// @Description Creates a new student record with fee information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
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

	id, err := c.studentService.CreateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a student record including derived fee status
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// ListStudents retrieves a paginated list of students
// @Summary List students
// @Description Retrieves students ordered by ID with pagination
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.ListStudents(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      dto.FromStudents(students),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateStudent applies a partial update to a student
// @Summary Update a student
// @Description Updates the provided fields of an existing student record
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Removes a student record
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted"},
		Timestamp: time.Now(),
	})
}

// GetStudentsWithFeesDue lists students with an outstanding balance
// @Summary Students with fees due
// @Description Retrieves students whose paid amount is below the owed amount, ordered by ID
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/fees/due [get]
func (c *StudentController) GetStudentsWithFeesDue(ctx *gin.Context) {
	c.respondWithStudents(ctx, c.studentService.StudentsWithFeesDue)
}

// GetStudentsUnpaid lists students who have paid nothing
// @Summary Students with unpaid fees
// @Description Retrieves students who have paid nothing against a non-zero fee
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/fees/unpaid [get]
func (c *StudentController) GetStudentsUnpaid(ctx *gin.Context) {
	c.respondWithStudents(ctx, c.studentService.StudentsUnpaid)
}

// GetStudentsPartiallyPaid lists students with partial payments
// @Summary Students with partially paid fees
// @Description Retrieves students who have paid part but not all of their fees
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/fees/partial [get]
func (c *StudentController) GetStudentsPartiallyPaid(ctx *gin.Context) {
	c.respondWithStudents(ctx, c.studentService.StudentsPartiallyPaid)
}

// GetStudentsFullyPaid lists students whose fees are settled
// @Summary Students with fully paid fees
// @Description Retrieves students whose paid amount covers the owed amount
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/fees/paid [get]
func (c *StudentController) GetStudentsFullyPaid(ctx *gin.Context) {
	c.respondWithStudents(ctx, c.studentService.StudentsFullyPaid)
}

// GetStudentsByGrade lists students in a grade
// @Summary Students in a grade
// @Description Retrieves students belonging to the given grade; unknown grades yield an empty list
// @Tags students
// @Accept json
// @Produce json
// @Param grade path int true "Grade" minimum(1) maximum(12)
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/grade/{grade} [get]
func (c *StudentController) GetStudentsByGrade(ctx *gin.Context) {
	gradeStr := ctx.Param("grade")
	grade, err := strconv.Atoi(gradeStr)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade").
			WithDetails("Grade must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, err := c.studentService.StudentsByGrade(ctx, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudents(students),
		Timestamp: time.Now(),
	})
}

func (c *StudentController) respondWithStudents(ctx *gin.Context, query func(ctxArg context.Context) ([]*models.Student, error)) {
	students, err := query(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudents(students),
		Timestamp: time.Now(),
	})
}
