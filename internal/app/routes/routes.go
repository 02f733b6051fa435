package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kerem/schoolhub/internal/app/controllers"
	"github.com/kerem/schoolhub/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PATCH("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)

		// Fee status queries
		students.GET("/fees/due", studentController.GetStudentsWithFeesDue)
		students.GET("/fees/unpaid", studentController.GetStudentsUnpaid)
		students.GET("/fees/partial", studentController.GetStudentsPartiallyPaid)
		students.GET("/fees/paid", studentController.GetStudentsFullyPaid)

		students.GET("/grade/:grade", studentController.GetStudentsByGrade)
	}

	// Teacher routes
	teachers := v1.Group("/teachers")
	{
		teachers.POST("", teacherController.CreateTeacher)
		teachers.GET("", teacherController.ListTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.PATCH("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)

		teachers.GET("/salary", teacherController.GetTeachersBySalary)
		teachers.GET("/grade/:grade", teacherController.GetTeachersByGrade)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
