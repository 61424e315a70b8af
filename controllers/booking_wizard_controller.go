package controllers

import (
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const bookingDraftSessionKey = "booking_draft"

// StartBookingWizardRequest opens a wizard for a product
type StartBookingWizardRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// StartBookingWizard creates a fresh draft for the given product, taking a
// pricing snapshot from the product and its best active deal
func StartBookingWizard(c *gin.Context) {
	utils.LogInfo("StartBookingWizard called")

	var req StartBookingWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Preload("Business").First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	if !product.IsActive || !product.Business.IsVisible {
		utils.LogError("Booking attempted on inactive product: %d", product.ID)
		utils.BadRequest(c, "This product is not currently bookable", nil)
		return
	}

	draft := BookingDraft{
		Step:            StepContact,
		BusinessID:      product.BusinessID,
		ProductID:       product.ID,
		Category:        product.Business.Category,
		OriginalPrice:   product.Price,
		DiscountPercent: activeDealPercent(product.ID, time.Now()),
	}

	if userID, exists := c.Get("user_id"); exists {
		draft.UserID = userID.(uint)
	}

	session := sessions.Default(c)
	session.Set(bookingDraftSessionKey, draft)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save booking draft to session: %v", err)
		utils.InternalServerError(c, "Failed to start booking", nil)
		return
	}

	utils.LogInfo("Booking wizard started for product %d", product.ID)
	utils.Success(c, "Booking started", gin.H{
		"step":             draft.Step,
		"category":         draft.Category,
		"original_price":   draft.OriginalPrice,
		"discount_percent": draft.DiscountPercent,
		"discounted_price": draft.DiscountedPrice(),
	})
}

// UpdateBookingWizardRequest carries field updates for the current step
type UpdateBookingWizardRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	NumberOfGuests  *int    `json:"number_of_guests"`
	SpecialRequests *string `json:"special_requests"`
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	VisitDate       *string `json:"visit_date"`
	ActivityTime    *string `json:"activity_time"`
	ReservationDate *string `json:"reservation_date"`
	ReservationTime *string `json:"reservation_time"`
	AgreeToTerms    *bool   `json:"agree_to_terms"`
}

// UpdateBookingWizard merges submitted fields into the session draft
func UpdateBookingWizard(c *gin.Context) {
	utils.LogInfo("UpdateBookingWizard called")

	draft, ok := loadBookingDraft(c)
	if !ok {
		return
	}

	var req UpdateBookingWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.FirstName != nil {
		draft.FirstName = utils.SanitizeString(*req.FirstName)
	}
	if req.LastName != nil {
		draft.LastName = utils.SanitizeString(*req.LastName)
	}
	if req.Email != nil {
		draft.Email = *req.Email
	}
	if req.Phone != nil {
		draft.Phone = *req.Phone
	}
	if req.NumberOfGuests != nil {
		draft.NumberOfGuests = *req.NumberOfGuests
	}
	if req.SpecialRequests != nil {
		draft.SpecialRequests = utils.SanitizeString(*req.SpecialRequests)
	}
	if req.CheckIn != nil {
		draft.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		draft.CheckOut = *req.CheckOut
	}
	if req.VisitDate != nil {
		draft.VisitDate = *req.VisitDate
	}
	if req.ActivityTime != nil {
		draft.ActivityTime = *req.ActivityTime
	}
	if req.ReservationDate != nil {
		draft.ReservationDate = *req.ReservationDate
	}
	if req.ReservationTime != nil {
		draft.ReservationTime = *req.ReservationTime
	}
	if req.AgreeToTerms != nil {
		draft.AgreeToTerms = *req.AgreeToTerms
	}

	if !saveBookingDraft(c, draft) {
		return
	}

	utils.Success(c, "Booking updated", gin.H{"step": draft.Step})
}

// BookingWizardNext validates the current step and advances the draft
func BookingWizardNext(c *gin.Context) {
	utils.LogInfo("BookingWizardNext called")

	draft, ok := loadBookingDraft(c)
	if !ok {
		return
	}

	errs, warnings := draft.Next(utils.DefaultAvailabilityRules())
	if len(errs) > 0 {
		utils.LogError("Wizard step %d validation failed: %v", draft.Step, errs)
		utils.ValidationError(c, "Please correct the highlighted fields", errs)
		return
	}

	if !saveBookingDraft(c, draft) {
		return
	}

	if len(warnings) > 0 {
		utils.LogInfo("Wizard step %d produced warnings: %v", draft.Step, warnings)
		utils.Warning(c, warnings[0], gin.H{
			"step":     draft.Step,
			"warnings": warnings,
			"time":     utils.DefaultBookingTime,
		})
		return
	}

	utils.Success(c, "Step completed", gin.H{"step": draft.Step})
}

// BookingWizardBack moves the draft one step backward
func BookingWizardBack(c *gin.Context) {
	utils.LogInfo("BookingWizardBack called")

	draft, ok := loadBookingDraft(c)
	if !ok {
		return
	}

	draft.Back()

	if !saveBookingDraft(c, draft) {
		return
	}

	utils.Success(c, "Step changed", gin.H{"step": draft.Step})
}

// GetBookingWizardReview returns the accumulated draft with the pricing
// snapshot for the confirmation step
func GetBookingWizardReview(c *gin.Context) {
	utils.LogInfo("GetBookingWizardReview called")

	draft, ok := loadBookingDraft(c)
	if !ok {
		return
	}

	utils.Success(c, "Booking review", gin.H{
		"step":              draft.Step,
		"category":          draft.Category,
		"business_id":       draft.BusinessID,
		"product_id":        draft.ProductID,
		"first_name":        draft.FirstName,
		"last_name":         draft.LastName,
		"email":             draft.Email,
		"phone":             draft.Phone,
		"number_of_guests":  draft.NumberOfGuests,
		"special_requests":  draft.SpecialRequests,
		"check_in":          draft.CheckIn,
		"check_out":         draft.CheckOut,
		"visit_date":        draft.VisitDate,
		"activity_time":     draft.ActivityTime,
		"reservation_date":  draft.ReservationDate,
		"reservation_time":  draft.ReservationTime,
		"original_price":    draft.OriginalPrice,
		"discount_percent":  draft.DiscountPercent,
		"discounted_price":  draft.DiscountedPrice(),
		"agree_to_terms":    draft.AgreeToTerms,
	})
}

// CancelBookingWizard discards the session draft
func CancelBookingWizard(c *gin.Context) {
	utils.LogInfo("CancelBookingWizard called")

	session := sessions.Default(c)
	session.Delete(bookingDraftSessionKey)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear booking draft: %v", err)
		utils.InternalServerError(c, "Failed to cancel booking", nil)
		return
	}

	utils.Success(c, "Booking cancelled", nil)
}

func loadBookingDraft(c *gin.Context) (*BookingDraft, bool) {
	session := sessions.Default(c)
	raw := session.Get(bookingDraftSessionKey)
	if raw == nil {
		utils.LogError("No booking draft in session")
		utils.BadRequest(c, "No booking in progress", nil)
		return nil, false
	}
	draft, ok := raw.(BookingDraft)
	if !ok {
		utils.LogError("Invalid booking draft type in session")
		utils.BadRequest(c, "No booking in progress", nil)
		return nil, false
	}
	return &draft, true
}

func saveBookingDraft(c *gin.Context, draft *BookingDraft) bool {
	session := sessions.Default(c)
	session.Set(bookingDraftSessionKey, *draft)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save booking draft: %v", err)
		utils.InternalServerError(c, "Failed to save booking progress", nil)
		return false
	}
	return true
}

// activeDealPercent returns the discount of the product's live deal, or 0.
// Expiry is always evaluated against now; deals have no stored status.
func activeDealPercent(productID uint, now time.Time) float64 {
	var deal models.Deal
	err := config.DB.Where("product_id = ? AND expires_at > ?", productID, now).
		Order("discount_percent DESC").
		First(&deal).Error
	if err != nil {
		return 0
	}
	return deal.DiscountPercent
}
