package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dcastillo-dev/TaraNa/controllers"
	"github.com/dcastillo-dev/TaraNa/middleware"
)

// initAdminRoutes initializes the back office routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// User management
			admin.GET("/users", controllers.GetUsers)
			admin.PATCH("/users/:id/block", controllers.BlockUser)
			admin.PATCH("/users/:id/unblock", controllers.UnblockUser)

			// Municipality management
			admin.POST("/municipalities", controllers.CreateMunicipality)
			admin.PUT("/municipalities/:id", controllers.UpdateMunicipality)
			admin.DELETE("/municipalities/:id", controllers.DeleteMunicipality)

			// Business oversight
			admin.GET("/businesses", controllers.AdminListBusinesses)
			admin.PATCH("/businesses/:id/hide", controllers.HideBusiness)
			admin.PATCH("/businesses/:id/show", controllers.ShowBusiness)

			// Verification review
			admin.GET("/verifications", controllers.ListVerificationApplications)
			admin.PATCH("/verifications/:id/approve", controllers.ApproveVerification)
			admin.PATCH("/verifications/:id/reject", controllers.RejectVerification)

			// Transportation schedules
			admin.POST("/transportation", controllers.CreateTransportationSchedule)
			admin.PUT("/transportation/:id", controllers.UpdateTransportationSchedule)
			admin.DELETE("/transportation/:id", controllers.DeleteTransportationSchedule)

			// Reports
			admin.GET("/reports/bookings", controllers.GetBookingReport)
			admin.GET("/reports/bookings/excel", controllers.DownloadBookingReportExcel)
			admin.GET("/reports/bookings/pdf", controllers.DownloadBookingReportPDF)
		}
	}
}
