package controllers

import (
	"strings"
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitBookingWizard persists the session draft as a booking. The draft
// survives a failed submission so the tourist can retry; it is discarded
// only on success.
func SubmitBookingWizard(c *gin.Context) {
	utils.LogInfo("SubmitBookingWizard called")

	draft, ok := loadBookingDraft(c)
	if !ok {
		return
	}

	if userID, exists := c.Get("user_id"); exists {
		draft.UserID = userID.(uint)
	}

	booking, appErr := submitBooking(draft)
	if appErr != nil {
		utils.LogError("Booking submission failed: %v", appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	session := sessions.Default(c)
	session.Delete(bookingDraftSessionKey)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear booking draft after submit: %v", err)
	}

	utils.Created(c, "Booking submitted successfully", bookingResponse(booking))
}

// BookAccommodationRequest is the direct submission payload for stays
type BookAccommodationRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

// BookAccommodation handles a one-shot accommodation booking
func BookAccommodation(c *gin.Context) {
	utils.LogInfo("BookAccommodation called")

	var req BookAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	draft := BookingDraft{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: utils.SanitizeString(req.SpecialRequests),
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		AgreeToTerms:    req.AgreeToTerms,
	}
	submitDirectBooking(c, req.ProductID, models.CategoryAccommodation, &draft)
}

// BookActivityRequest is the direct submission payload for activities
type BookActivityRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
	VisitDate       string `json:"visit_date" binding:"required"`
	ActivityTime    string `json:"activity_time" binding:"required"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

// BookActivity handles a one-shot activity booking
func BookActivity(c *gin.Context) {
	utils.LogInfo("BookActivity called")

	var req BookActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	draft := BookingDraft{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: utils.SanitizeString(req.SpecialRequests),
		VisitDate:       req.VisitDate,
		ActivityTime:    req.ActivityTime,
		AgreeToTerms:    req.AgreeToTerms,
	}
	submitDirectBooking(c, req.ProductID, models.CategoryActivity, &draft)
}

// BookRestaurantRequest is the direct submission payload for table reservations
type BookRestaurantRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	ReservationTime string `json:"reservation_time" binding:"required"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

// BookRestaurant handles a one-shot table reservation
func BookRestaurant(c *gin.Context) {
	utils.LogInfo("BookRestaurant called")

	var req BookRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	draft := BookingDraft{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: utils.SanitizeString(req.SpecialRequests),
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		AgreeToTerms:    req.AgreeToTerms,
	}
	submitDirectBooking(c, req.ProductID, models.CategoryRestaurant, &draft)
}

func submitDirectBooking(c *gin.Context, productID uint, category string, draft *BookingDraft) {
	var product models.Product
	if err := config.DB.Preload("Business").First(&product, productID).Error; err != nil {
		utils.LogError("Product not found: %d", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	if product.Business.Category != category {
		utils.LogError("Category mismatch for product %d: %s != %s", productID, product.Business.Category, category)
		utils.BadRequest(c, "Product does not belong to this booking category", nil)
		return
	}

	draft.Step = StepReview
	draft.BusinessID = product.BusinessID
	draft.ProductID = product.ID
	draft.Category = category
	draft.OriginalPrice = product.Price
	draft.DiscountPercent = activeDealPercent(product.ID, time.Now())

	if userID, exists := c.Get("user_id"); exists {
		draft.UserID = userID.(uint)
	}

	booking, appErr := submitBooking(draft)
	if appErr != nil {
		utils.LogError("Booking submission failed: %v", appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	utils.Created(c, "Booking submitted successfully", bookingResponse(booking))
}

// submitBooking runs the final gate (terms, per-step validation, slot
// conflicts) and persists the draft with a server-computed pricing snapshot.
func submitBooking(draft *BookingDraft) (*models.Booking, *utils.AppError) {
	rules := utils.DefaultAvailabilityRules()

	if ok, reason := draft.CanSubmit(rules); !ok {
		return nil, utils.BadRequestError(reason, nil)
	}

	var product models.Product
	if err := config.DB.Preload("Business").First(&product, draft.ProductID).Error; err != nil {
		return nil, utils.NotFoundError("Product not found", err)
	}
	if !product.IsActive || !product.Business.IsVisible {
		return nil, utils.BadRequestError("This product is not currently bookable", nil)
	}

	booking := models.Booking{
		ReferenceCode:   newReferenceCode(),
		BusinessID:      draft.BusinessID,
		ProductID:       draft.ProductID,
		UserID:          draft.UserID,
		FirstName:       draft.FirstName,
		LastName:        draft.LastName,
		Email:           draft.Email,
		Phone:           draft.Phone,
		NumberOfGuests:  draft.NumberOfGuests,
		SpecialRequests: draft.SpecialRequests,
		OriginalPrice:   draft.OriginalPrice,
		DiscountPercent: draft.DiscountPercent,
		DiscountedPrice: draft.DiscountedPrice(),
		AgreeToTerms:    draft.AgreeToTerms,
		Status:          models.BookingStatusPending,
	}

	switch draft.Category {
	case models.CategoryAccommodation:
		checkIn, _ := parseDraftDate(draft.CheckIn)
		checkOut, _ := parseDraftDate(draft.CheckOut)
		booking.CheckIn = &checkIn
		booking.CheckOut = &checkOut
	case models.CategoryActivity:
		visit, _ := parseDraftDate(draft.VisitDate)
		booking.VisitDate = &visit
		booking.ActivityTime = draft.ActivityTime
	case models.CategoryRestaurant:
		date, _ := parseDraftDate(draft.ReservationDate)
		booking.ReservationDate = &date
		booking.ReservationTime = draft.ReservationTime
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return nil, utils.NewAppError(500, "Failed to start transaction", tx.Error)
	}

	// Accommodation ranges are re-checked inside the transaction so two
	// submissions for the same room cannot both land.
	if draft.Category == models.CategoryAccommodation {
		var overlapping int64
		err := tx.Model(&models.Booking{}).
			Where("product_id = ? AND status IN ?", draft.ProductID,
				[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
			Where("check_in <= ? AND check_out >= ?", booking.CheckOut, booking.CheckIn).
			Count(&overlapping).Error
		if err != nil {
			tx.Rollback()
			return nil, utils.NewAppError(500, "Failed to check availability", err)
		}
		if overlapping > 0 {
			tx.Rollback()
			return nil, utils.ConflictError("The selected dates are no longer available", nil)
		}
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(500, "Failed to create booking", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewAppError(500, "Failed to commit booking", err)
	}

	utils.LogInfo("Booking %s created for product %d (user %d)", booking.ReferenceCode, booking.ProductID, booking.UserID)

	// Confirmation email is best effort; the booking stands either way.
	if err := utils.SendBookingConfirmation(booking.Email, booking.ReferenceCode, product.Business.Name,
		booking.NumberOfGuests, booking.DiscountedPrice); err != nil {
		utils.LogError("Failed to send booking confirmation email: %v", err)
	}

	return &booking, nil
}

// ListMyBookings returns the authenticated user's bookings
func ListMyBookings(c *gin.Context) {
	utils.LogInfo("ListMyBookings called")

	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := query.Preload("Business").Preload("Product").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings: %v", err)
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

// GetBookingByReference looks up a booking by its reference code. Walk-in
// customers have no account, so the lookup authorizes on the email used at
// booking time instead of a session.
func GetBookingByReference(c *gin.Context) {
	utils.LogInfo("GetBookingByReference called")

	reference := strings.ToUpper(strings.TrimSpace(c.Param("reference")))
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.BadRequest(c, "Email is required to look up a booking", nil)
		return
	}

	var booking models.Booking
	err := config.DB.Preload("Business").Preload("Product").
		Where("reference_code = ? AND LOWER(email) = LOWER(?)", reference, email).
		First(&booking).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Booking not found")
			return
		}
		utils.LogError("Failed to fetch booking: %v", err)
		utils.InternalServerError(c, "Failed to fetch booking", err.Error())
		return
	}

	utils.Success(c, "Booking retrieved successfully", bookingResponse(&booking))
}

func bookingResponse(b *models.Booking) gin.H {
	resp := gin.H{
		"id":               b.ID,
		"reference_code":   b.ReferenceCode,
		"business_id":      b.BusinessID,
		"product_id":       b.ProductID,
		"user_id":          b.UserID,
		"first_name":       b.FirstName,
		"last_name":        b.LastName,
		"email":            b.Email,
		"phone":            b.Phone,
		"number_of_guests": b.NumberOfGuests,
		"special_requests": b.SpecialRequests,
		"original_price":   b.OriginalPrice,
		"discount_percent": b.DiscountPercent,
		"discounted_price": b.DiscountedPrice,
		"status":           b.Status,
		"is_paid":          b.IsPaid,
		"created_at":       b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if b.CheckIn != nil {
		resp["check_in"] = b.CheckIn.Format("2006-01-02")
	}
	if b.CheckOut != nil {
		resp["check_out"] = b.CheckOut.Format("2006-01-02")
	}
	if b.VisitDate != nil {
		resp["visit_date"] = b.VisitDate.Format("2006-01-02")
		resp["activity_time"] = b.ActivityTime
	}
	if b.ReservationDate != nil {
		resp["reservation_date"] = b.ReservationDate.Format("2006-01-02")
		resp["reservation_time"] = b.ReservationTime
	}
	if b.Business.ID != 0 {
		resp["business_name"] = b.Business.Name
	}
	if b.Product.ID != 0 {
		resp["product_name"] = b.Product.Name
	}
	return resp
}

func newReferenceCode() string {
	return "TN-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}
