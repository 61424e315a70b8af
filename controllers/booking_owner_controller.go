package controllers

import (
	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// ListOwnerBookings returns bookings across the caller's businesses,
// optionally filtered by status
func ListOwnerBookings(c *gin.Context) {
	utils.LogInfo("ListOwnerBookings called")

	user := c.MustGet("user").(models.User)
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Booking{}).
		Joins("JOIN businesses ON businesses.id = bookings.business_id").
		Where("businesses.owner_id = ?", user.ID).
		Order("bookings.created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("bookings.status = ?", status)
	}

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := query.Preload("Product").Preload("Business").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch owner bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}

	results := make([]gin.H, len(bookings))
	for i := range bookings {
		results[i] = bookingResponse(&bookings[i])
	}

	utils.Success(c, "Bookings retrieved successfully", gin.H{
		"bookings":   results,
		"pagination": pagination.Meta(),
	})
}

// ConfirmBooking moves a pending booking to confirmed
func ConfirmBooking(c *gin.Context) {
	utils.LogInfo("ConfirmBooking called")

	booking, ok := ownedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusPending {
		utils.Conflict(c, "Only pending bookings can be confirmed", nil)
		return
	}

	if err := config.DB.Model(booking).Update("status", models.BookingStatusConfirmed).Error; err != nil {
		utils.LogError("Failed to confirm booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to confirm booking", err.Error())
		return
	}

	booking.Status = models.BookingStatusConfirmed
	utils.LogInfo("Booking %s confirmed", booking.ReferenceCode)
	utils.Success(c, "Booking confirmed", bookingResponse(booking))
}

// CancelOwnerBookingRequest carries the optional cancellation reason
type CancelOwnerBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking cancels a pending or confirmed booking
func CancelBooking(c *gin.Context) {
	utils.LogInfo("CancelBooking called")

	booking, ok := ownedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		utils.Conflict(c, "This booking can no longer be cancelled", nil)
		return
	}

	var req CancelOwnerBookingRequest
	_ = c.ShouldBindJSON(&req)

	updates := map[string]interface{}{
		"status":              models.BookingStatusCancelled,
		"cancellation_reason": utils.SanitizeString(req.Reason),
	}
	if err := config.DB.Model(booking).Updates(updates).Error; err != nil {
		utils.LogError("Failed to cancel booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to cancel booking", err.Error())
		return
	}

	booking.Status = models.BookingStatusCancelled
	utils.LogInfo("Booking %s cancelled", booking.ReferenceCode)
	utils.Success(c, "Booking cancelled", bookingResponse(booking))
}

// CompleteBooking marks a confirmed booking as completed after the stay or
// visit has taken place
func CompleteBooking(c *gin.Context) {
	utils.LogInfo("CompleteBooking called")

	booking, ok := ownedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusConfirmed {
		utils.Conflict(c, "Only confirmed bookings can be completed", nil)
		return
	}

	if err := config.DB.Model(booking).Update("status", models.BookingStatusCompleted).Error; err != nil {
		utils.LogError("Failed to complete booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to complete booking", err.Error())
		return
	}

	booking.Status = models.BookingStatusCompleted
	utils.LogInfo("Booking %s completed", booking.ReferenceCode)
	utils.Success(c, "Booking completed", bookingResponse(booking))
}

// ownedBooking loads the booking in the path and verifies the caller owns
// the business it belongs to
func ownedBooking(c *gin.Context) (*models.Booking, bool) {
	user := c.MustGet("user").(models.User)

	var booking models.Booking
	err := config.DB.
		Joins("JOIN businesses ON businesses.id = bookings.business_id").
		Where("bookings.id = ? AND businesses.owner_id = ?", c.Param("id"), user.ID).
		Preload("Product").Preload("Business").
		First(&booking).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Booking not found")
		} else {
			utils.LogError("Failed to fetch booking: %v", err)
			utils.InternalServerError(c, "Failed to fetch booking", err.Error())
		}
		return nil, false
	}
	return &booking, true
}
