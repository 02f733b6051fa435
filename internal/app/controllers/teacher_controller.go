package controllers

import (
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

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher registration
// @Summary Register a new teacher
// @Description Creates a new teacher record with optional grade assignments
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	teacher := &models.Teacher{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Salary:  req.Salary,
		Grades:  req.Grades,
	}

	id, err := c.teacherService.CreateTeacher(ctx, teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromTeacher(teacher),
		Timestamp: time.Now(),
	})
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher details
// @Description Retrieves a teacher record including assigned grades
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromTeacher(teacher),
		Timestamp: time.Now(),
	})
}

// ListTeachers retrieves a paginated list of teachers
// @Summary List teachers
// @Description Retrieves teachers ordered by ID with pagination
// @Tags teachers
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	teachers, total, err := c.teacherService.ListTeachers(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      dto.FromTeachers(teachers),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateTeacher applies a partial update to a teacher
// @Summary Update a teacher
// @Description Updates the provided fields of an existing teacher; a grades list replaces the current assignments
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [patch]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromTeacher(teacher),
		Timestamp: time.Now(),
	})
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Removes a teacher record and its grade assignments
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Teacher deleted"},
		Timestamp: time.Now(),
	})
}

// GetTeachersBySalary filters teachers by salary bounds
// @Summary Teachers within a salary range
// @Description Retrieves teachers whose salary falls within the optional inclusive min/max bounds, ordered by ID
// @Tags teachers
// @Accept json
// @Produce json
// @Param min query number false "Inclusive lower salary bound"
// @Param max query number false "Inclusive upper salary bound"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherResponse} "Teachers retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid salary bounds"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/salary [get]
func (c *TeacherController) GetTeachersBySalary(ctx *gin.Context) {
	min, ok := parseSalaryBound(ctx, "min")
	if !ok {
		return
	}
	max, ok := parseSalaryBound(ctx, "max")
	if !ok {
		return
	}

	teachers, err := c.teacherService.TeachersBySalary(ctx, min, max)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromTeachers(teachers),
		Timestamp: time.Now(),
	})
}

// GetTeachersByGrade lists teachers assigned to a grade
// @Summary Teachers for a grade
// @Description Retrieves teachers assigned to the given grade ordered by ID; unknown grades yield an empty list
// @Tags teachers
// @Accept json
// @Produce json
// @Param grade path int true "Grade" minimum(1) maximum(12)
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherResponse} "Teachers retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/grade/{grade} [get]
func (c *TeacherController) GetTeachersByGrade(ctx *gin.Context) {
	gradeStr := ctx.Param("grade")
	grade, err := strconv.Atoi(gradeStr)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade").
			WithDetails("Grade must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teachers, err := c.teacherService.TeachersByGrade(ctx, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromTeachers(teachers),
		Timestamp: time.Now(),
	})
}

// parseSalaryBound reads an optional float query parameter, writing a 400
// response and returning ok=false when it is malformed. An absent
// parameter yields a nil bound.
func parseSalaryBound(ctx *gin.Context, name string) (*float64, bool) {
	raw, present := ctx.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &value, true
}
