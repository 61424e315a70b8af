package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiatePaymentRequest identifies the booking being paid for. Walk-in
// customers authorize with the booking email instead of a session.
type InitiatePaymentRequest struct {
	ReferenceCode string `json:"reference_code" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
}

// InitiateBookingPayment creates a Razorpay order for the booking's
// discounted total so the tourist can pay the deposit online
func InitiateBookingPayment(c *gin.Context) {
	utils.LogInfo("InitiateBookingPayment called")

	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var booking models.Booking
	err := config.DB.Preload("Business").
		Where("reference_code = ? AND LOWER(email) = LOWER(?)", req.ReferenceCode, req.Email).
		First(&booking).Error
	if err != nil {
		utils.LogError("Booking not found for payment: %s", req.ReferenceCode)
		utils.NotFound(c, "Booking not found")
		return
	}

	if booking.IsPaid {
		utils.BadRequest(c, "This booking has already been paid", nil)
		return
	}
	if booking.Status == models.BookingStatusCancelled {
		utils.BadRequest(c, "Cancelled bookings cannot be paid", nil)
		return
	}

	// Razorpay expects the amount in the smallest currency unit. Rounding
	// keeps amounts like 8.20 from truncating to 819 centavos.
	amount := utils.AmountInCentavos(booking.DiscountedPrice)
	if amount <= 0 {
		utils.BadRequest(c, "Nothing to pay for this booking", nil)
		return
	}

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amount,
		"currency":        "PHP",
		"receipt":         "booking_" + booking.ReferenceCode,
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for booking %s: %v", booking.ReferenceCode, err)
		utils.InternalServerError(c, "Failed to initiate payment", err.Error())
		return
	}

	rzOrderID := fmt.Sprintf("%v", rzOrder["id"])
	if err := config.DB.Model(&booking).Updates(map[string]interface{}{
		"payment_method":    "RAZORPAY",
		"razorpay_order_id": rzOrderID,
	}).Error; err != nil {
		utils.LogError("Failed to store Razorpay order id for booking %s: %v", booking.ReferenceCode, err)
		utils.InternalServerError(c, "Failed to initiate payment", err.Error())
		return
	}

	utils.LogInfo("Payment initiated for booking %s (order %s)", booking.ReferenceCode, rzOrderID)
	utils.Success(c, "Payment initiated successfully", gin.H{
		"booking": gin.H{
			"reference_code":    booking.ReferenceCode,
			"business":          booking.Business.Name,
			"razorpay_order_id": rzOrderID,
			"amount":            fmt.Sprintf("%.2f", booking.DiscountedPrice),
		},
		"key": os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifyPaymentRequest carries Razorpay's checkout callback values
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyBookingPayment checks the checkout signature and marks the booking
// paid
func VerifyBookingPayment(c *gin.Context) {
	utils.LogInfo("VerifyBookingPayment called")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("razorpay_order_id = ?", req.RazorpayOrderID).
		First(&booking).Error; err != nil {
		utils.LogError("No booking found for Razorpay order %s", req.RazorpayOrderID)
		utils.NotFound(c, "Booking not found for this payment")
		return
	}

	payload := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	mac := hmac.New(sha256.New, []byte(os.Getenv("RAZORPAY_SECRET")))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.RazorpaySignature)) {
		utils.LogError("Invalid payment signature for booking %s", booking.ReferenceCode)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}

	if err := config.DB.Model(&booking).Update("is_paid", true).Error; err != nil {
		utils.LogError("Failed to mark booking %s paid: %v", booking.ReferenceCode, err)
		utils.InternalServerError(c, "Failed to record payment", err.Error())
		return
	}

	utils.LogInfo("Booking %s paid via Razorpay payment %s", booking.ReferenceCode, req.RazorpayPaymentID)
	utils.Success(c, "Payment verified successfully", gin.H{
		"reference_code": booking.ReferenceCode,
		"is_paid":        true,
	})
}
