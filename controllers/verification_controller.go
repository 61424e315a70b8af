package controllers

import (
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// SubmitVerificationRequest represents an owner's verification application
type SubmitVerificationRequest struct {
	BusinessID        uint   `json:"business_id" binding:"required"`
	CertificateNumber string `json:"certificate_number" binding:"required"`
}

// SubmitVerificationApplication files a verification request for one of the
// caller's businesses. Only one pending application per business is allowed.
func SubmitVerificationApplication(c *gin.Context) {
	utils.LogInfo("SubmitVerificationApplication called")

	user := c.MustGet("user").(models.User)

	var req SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var business models.Business
	if err := config.DB.Preload("Municipality").
		Where("id = ? AND owner_id = ?", req.BusinessID, user.ID).
		First(&business).Error; err != nil {
		utils.NotFound(c, "Business not found")
		return
	}

	if business.IsVerified {
		utils.BadRequest(c, "Business is already verified", nil)
		return
	}

	var pending int64
	config.DB.Model(&models.VerificationApplication{}).
		Where("business_id = ? AND status = ?", business.ID, models.VerificationPending).
		Count(&pending)
	if pending > 0 {
		utils.Conflict(c, "A verification application is already pending for this business", nil)
		return
	}

	application := models.VerificationApplication{
		OwnerID:           user.ID,
		BusinessID:        business.ID,
		BusinessName:      business.Name,
		Category:          business.Category,
		CertificateNumber: utils.SanitizeString(req.CertificateNumber),
		Location:          business.Municipality.Name,
		SubmittedAt:       time.Now(),
		Status:            models.VerificationPending,
	}

	if err := config.DB.Create(&application).Error; err != nil {
		utils.LogError("Failed to create verification application: %v", err)
		utils.InternalServerError(c, "Failed to submit application", err.Error())
		return
	}

	utils.LogInfo("Verification application %d submitted for business %d", application.ID, business.ID)
	utils.Created(c, "Verification application submitted", verificationResponse(&application))
}

// ListVerificationApplications returns applications for the back office,
// optionally filtered by status
func ListVerificationApplications(c *gin.Context) {
	utils.LogInfo("ListVerificationApplications called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.VerificationApplication{}).
		Preload("Owner").
		Order("submitted_at DESC")

	switch c.Query("status") {
	case "pending":
		query = query.Where("status = ?", models.VerificationPending)
	case "approved":
		query = query.Where("status = ?", models.VerificationApproved)
	case "rejected":
		query = query.Where("status = ?", models.VerificationRejected)
	}

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var applications []models.VerificationApplication
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&applications).Error; err != nil {
		utils.LogError("Failed to fetch verification applications: %v", err)
		utils.InternalServerError(c, "Failed to fetch applications", err.Error())
		return
	}

	results := make([]gin.H, len(applications))
	for i := range applications {
		results[i] = verificationResponse(&applications[i])
	}

	utils.Success(c, "Applications retrieved successfully", gin.H{
		"applications": results,
		"pagination":   pagination.Meta(),
	})
}

// ApproveVerification transitions a pending application to approved and
// marks the business verified. Approval is terminal.
func ApproveVerification(c *gin.Context) {
	utils.LogInfo("ApproveVerification called")

	application, ok := pendingApplication(c)
	if !ok {
		return
	}

	now := time.Now()

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Model(application).Updates(map[string]interface{}{
		"status":      models.VerificationApproved,
		"reviewed_at": &now,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to approve application %d: %v", application.ID, err)
		utils.InternalServerError(c, "Failed to approve application", err.Error())
		return
	}

	if err := tx.Model(&models.Business{}).Where("id = ?", application.BusinessID).
		Update("is_verified", true).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to mark business %d verified: %v", application.BusinessID, err)
		utils.InternalServerError(c, "Failed to approve application", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	application.Status = models.VerificationApproved
	application.ReviewedAt = &now

	utils.LogInfo("Verification application %d approved", application.ID)
	utils.Success(c, "Application approved", verificationResponse(application))
}

// RejectVerificationRequest carries the optional rejection reason
type RejectVerificationRequest struct {
	Reason string `json:"reason"`
}

// RejectVerification transitions a pending application to rejected.
// Rejection is terminal; the owner must file a fresh application.
func RejectVerification(c *gin.Context) {
	utils.LogInfo("RejectVerification called")

	application, ok := pendingApplication(c)
	if !ok {
		return
	}

	var req RejectVerificationRequest
	_ = c.ShouldBindJSON(&req)

	now := time.Now()
	if err := config.DB.Model(application).Updates(map[string]interface{}{
		"status":        models.VerificationRejected,
		"reviewed_at":   &now,
		"reject_reason": utils.SanitizeString(req.Reason),
	}).Error; err != nil {
		utils.LogError("Failed to reject application %d: %v", application.ID, err)
		utils.InternalServerError(c, "Failed to reject application", err.Error())
		return
	}

	application.Status = models.VerificationRejected
	application.ReviewedAt = &now
	application.RejectReason = req.Reason

	utils.LogInfo("Verification application %d rejected", application.ID)
	utils.Success(c, "Application rejected", verificationResponse(application))
}

// pendingApplication loads the application in the path and enforces that it
// is still pending; approved and rejected are both terminal states
func pendingApplication(c *gin.Context) (*models.VerificationApplication, bool) {
	var application models.VerificationApplication
	err := config.DB.First(&application, c.Param("id")).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Application not found")
		} else {
			utils.LogError("Failed to fetch application: %v", err)
			utils.InternalServerError(c, "Failed to fetch application", err.Error())
		}
		return nil, false
	}

	if !application.IsPending() {
		utils.LogError("Attempted to review non-pending application %d (status %d)", application.ID, application.Status)
		utils.Conflict(c, "Application has already been reviewed", nil)
		return nil, false
	}

	return &application, true
}

func verificationResponse(v *models.VerificationApplication) gin.H {
	resp := gin.H{
		"id":                 v.ID,
		"business_id":        v.BusinessID,
		"business_name":      v.BusinessName,
		"category":           v.Category,
		"certificate_number": v.CertificateNumber,
		"location":           v.Location,
		"submitted_at":       v.SubmittedAt.Format("2006-01-02"),
		"status":             v.Status,
		"status_label":       v.StatusLabel(),
	}
	if v.ReviewedAt != nil {
		resp["reviewed_at"] = v.ReviewedAt.Format("2006-01-02 15:04:05")
	}
	if v.RejectReason != "" {
		resp["reject_reason"] = v.RejectReason
	}
	if v.Owner.ID != 0 {
		resp["owner"] = gin.H{
			"id":    v.Owner.ID,
			"name":  v.Owner.FirstName + " " + v.Owner.LastName,
			"email": v.Owner.Email,
		}
	}
	return resp
}
