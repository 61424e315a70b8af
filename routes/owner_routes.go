package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dcastillo-dev/TaraNa/controllers"
	"github.com/dcastillo-dev/TaraNa/middleware"
)

// initOwnerRoutes initializes the business owner panel routes
func initOwnerRoutes(router *gin.RouterGroup) {
	owner := router.Group("/owner")
	owner.Use(middleware.AuthMiddleware(), middleware.OwnerMiddleware())
	{
		// Business management
		owner.GET("/businesses", controllers.GetMyBusinesses)
		owner.PUT("/businesses/:id", controllers.UpdateBusiness)
		owner.POST("/businesses/:id/image", controllers.UploadBusinessImage)

		// Product management
		owner.POST("/products", controllers.CreateProduct)
		owner.PUT("/products/:id", controllers.UpdateProduct)
		owner.DELETE("/products/:id", controllers.DeleteProduct)
		owner.POST("/products/:id/image", controllers.UploadProductImage)

		// Deal management
		owner.GET("/deals", controllers.ListDeals)
		owner.POST("/deals", controllers.CreateDeal)
		owner.PUT("/deals/:id", controllers.UpdateDeal)
		owner.DELETE("/deals/:id", controllers.DeleteDeal)

		// Verification
		owner.POST("/verification", controllers.SubmitVerificationApplication)

		// Booking management
		owner.GET("/bookings", controllers.ListOwnerBookings)
		owner.PATCH("/bookings/:id/confirm", controllers.ConfirmBooking)
		owner.PATCH("/bookings/:id/cancel", controllers.CancelBooking)
		owner.PATCH("/bookings/:id/complete", controllers.CompleteBooking)
	}
}
