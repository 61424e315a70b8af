package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dcastillo-dev/TaraNa/controllers"
	"github.com/dcastillo-dev/TaraNa/middleware"
)

// initPublicRoutes initializes the directory, booking, and payment routes
// that do not require a logged-in user
func initPublicRoutes(router *gin.RouterGroup) {
	// Directory browsing
	router.GET("/municipalities", controllers.ListMunicipalities)
	router.GET("/municipalities/:id", controllers.GetMunicipality)
	router.GET("/businesses", controllers.BrowseBusinesses)
	router.GET("/businesses/:encryptedId", controllers.GetBusiness)
	router.GET("/businesses/:encryptedId/products", controllers.ListBusinessProducts)

	// Transportation schedules
	router.GET("/transportation", controllers.ListTransportationSchedules)

	// Booking wizard and submission. Walk-in guests may book without an
	// account, so auth is optional here.
	booking := router.Group("/booking")
	booking.Use(middleware.OptionalAuthMiddleware())
	{
		booking.POST("/wizard/start", controllers.StartBookingWizard)
		booking.PUT("/wizard", controllers.UpdateBookingWizard)
		booking.POST("/wizard/next", controllers.BookingWizardNext)
		booking.POST("/wizard/back", controllers.BookingWizardBack)
		booking.GET("/wizard/review", controllers.GetBookingWizardReview)
		booking.DELETE("/wizard", controllers.CancelBookingWizard)
		booking.POST("/wizard/submit", controllers.SubmitBookingWizard)

		booking.POST("/accommodation", controllers.BookAccommodation)
		booking.POST("/activity", controllers.BookActivity)
		booking.POST("/restaurant", controllers.BookRestaurant)
	}

	// Reference code lookup for walk-in guests
	router.GET("/bookings/:reference", controllers.GetBookingByReference)
	router.GET("/bookings/:reference/voucher", controllers.DownloadBookingVoucher)

	// Booking deposit payments
	router.POST("/payments/initiate", controllers.InitiateBookingPayment)
	router.POST("/payments/verify", controllers.VerifyBookingPayment)
}
