package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/controllers"
	"github.com/kaan/examportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	examTypeController *controllers.ExamTypeController,
	departmentController *controllers.DepartmentController,
	periodController *controllers.AcademicPeriodController,
	materialController *controllers.MaterialController,
	fileController *controllers.FileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public content hierarchy reads ---
	v1.GET("/exam-types", examTypeController.ListExamTypes)
	v1.GET("/exam-types/:examTypeId/departments", departmentController.ListByExamType)
	v1.GET("/departments/:departmentId/academic-periods", periodController.ListByDepartment)
	v1.GET("/academic-periods/:academicPeriodId/materials", materialController.ListByAcademicPeriod)
	v1.GET("/materials/:materialId/content", materialController.GetContent)
	v1.GET("/materials/:materialId/breadcrumb", materialController.GetBreadcrumb)
	v1.GET("/files/:filename", fileController.ServeFile)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/admin/login", authController.AdminLogin)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}
	v1.POST("/users", authController.RegisterUser)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.BearerAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		// Content mutations require the admin role.
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.AdminRequired())
		{
			adminOnly.POST("/exam-types", examTypeController.CreateExamType)
			adminOnly.PUT("/exam-types/:examTypeId", examTypeController.UpdateExamType)
			adminOnly.DELETE("/exam-types/:examTypeId", examTypeController.DeleteExamType)

			adminOnly.POST("/departments", departmentController.CreateDepartment)
			adminOnly.PUT("/departments/:departmentId", departmentController.UpdateDepartment)
			adminOnly.DELETE("/departments/:departmentId", departmentController.DeleteDepartment)

			adminOnly.POST("/academic-periods", periodController.CreateAcademicPeriod)
			adminOnly.PUT("/academic-periods/:academicPeriodId", periodController.UpdateAcademicPeriod)
			adminOnly.DELETE("/academic-periods/:academicPeriodId", periodController.DeleteAcademicPeriod)

			adminOnly.POST("/materials", materialController.CreateMaterial)
			adminOnly.PUT("/materials/:materialId", materialController.UpdateMaterial)
			adminOnly.DELETE("/materials/:materialId", materialController.DeleteMaterial)

			adminOnly.POST("/materials/:materialId/documents", materialController.UploadDocument)
			adminOnly.DELETE("/documents/:documentId", materialController.DeleteDocument)
			adminOnly.POST("/materials/:materialId/questions", materialController.CreateQuestion)
			adminOnly.DELETE("/questions/:questionId", materialController.DeleteQuestion)
		}

		// Admin account management requires the super-admin flag.
		superAdminOnly := authenticated.Group("/admins")
		superAdminOnly.Use(authMiddleware.SuperAdminRequired())
		{
			superAdminOnly.POST("", adminController.CreateAdmin)
			superAdminOnly.PATCH("/:adminId/active", adminController.SetAdminActive)
		}
	}
}
