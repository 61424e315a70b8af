package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dcastillo-dev/TaraNa/controllers"
	"github.com/dcastillo-dev/TaraNa/middleware"
)

// initUserRoutes initializes registration, login, and account routes
func initUserRoutes(router *gin.RouterGroup) {
	router.POST("/register", controllers.RegisterUser)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/login", controllers.LoginUser)

	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.UserLogout)
		protected.GET("/profile", controllers.GetProfile)
		protected.GET("/bookings", controllers.ListMyBookings)

		// Registering a business promotes the account to a business owner
		protected.POST("/businesses", controllers.RegisterBusiness)
	}
}
