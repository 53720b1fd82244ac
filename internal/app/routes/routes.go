package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
) {
	students := router.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:control_number", studentController.GetStudent)
		students.PUT("/:control_number", studentController.UpdateStudent)
		students.DELETE("/:control_number", studentController.DeleteStudent)
	}

	router.GET("/health", healthController.Health)
}
