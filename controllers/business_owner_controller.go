package controllers

import (
	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRequest represents the payload to list a new business
type RegisterBusinessRequest struct {
	MunicipalityID uint   `json:"municipality_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Category       string `json:"category" binding:"required"`
	Address        string `json:"address" binding:"required"`
	ContactNumber  string `json:"contact_number" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
}

// RegisterBusiness creates an unverified listing owned by the caller and
// marks the account as a business owner
func RegisterBusiness(c *gin.Context) {
	utils.LogInfo("RegisterBusiness called")

	user := c.MustGet("user").(models.User)

	var req RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.IsValidCategory(req.Category) {
		utils.LogError("Invalid business category: %s", req.Category)
		utils.BadRequest(c, "Invalid category", nil)
		return
	}

	if ok, formatted := utils.ValidatePhone(req.ContactNumber); !ok {
		utils.BadRequest(c, "Invalid contact number", formatted)
		return
	} else {
		req.ContactNumber = formatted
	}

	var municipality models.Municipality
	if err := config.DB.First(&municipality, req.MunicipalityID).Error; err != nil {
		utils.NotFound(c, "Municipality not found")
		return
	}

	business := models.Business{
		OwnerID:        user.ID,
		MunicipalityID: req.MunicipalityID,
		Name:           utils.SanitizeString(req.Name),
		Description:    utils.SanitizeString(req.Description),
		Category:       req.Category,
		Address:        utils.SanitizeString(req.Address),
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		IsVisible:      true,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Create(&business).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create business: %v", err)
		utils.InternalServerError(c, "Failed to create business", err.Error())
		return
	}

	if !user.IsOwner {
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("is_owner", true).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to flag user %d as owner: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to create business", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Business %d registered by user %d", business.ID, user.ID)
	utils.Created(c, "Business registered successfully", gin.H{
		"id":       business.ID,
		"name":     business.Name,
		"category": business.Category,
	})
}

// GetMyBusinesses returns the caller's listings
func GetMyBusinesses(c *gin.Context) {
	utils.LogInfo("GetMyBusinesses called")

	user := c.MustGet("user").(models.User)

	var businesses []models.Business
	err := config.DB.Preload("Municipality").Preload("Products").
		Where("owner_id = ?", user.ID).
		Find(&businesses).Error
	if err != nil {
		utils.LogError("Failed to fetch businesses for owner %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch businesses", err.Error())
		return
	}

	utils.Success(c, "Businesses retrieved successfully", gin.H{"businesses": businesses})
}

// UpdateBusinessRequest represents the editable business fields
type UpdateBusinessRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
}

// UpdateBusiness edits one of the caller's listings
func UpdateBusiness(c *gin.Context) {
	utils.LogInfo("UpdateBusiness called")

	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Name != nil {
		business.Name = utils.SanitizeString(*req.Name)
	}
	if req.Description != nil {
		business.Description = utils.SanitizeString(*req.Description)
	}
	if req.Address != nil {
		business.Address = utils.SanitizeString(*req.Address)
	}
	if req.ContactNumber != nil {
		ok, formatted := utils.ValidatePhone(*req.ContactNumber)
		if !ok {
			utils.BadRequest(c, "Invalid contact number", formatted)
			return
		}
		business.ContactNumber = formatted
	}
	if req.Email != nil {
		if ok, msg := utils.ValidateEmail(*req.Email); !ok {
			utils.BadRequest(c, "Invalid email", msg)
			return
		}
		business.Email = *req.Email
	}

	if err := config.DB.Save(business).Error; err != nil {
		utils.LogError("Failed to update business %d: %v", business.ID, err)
		utils.InternalServerError(c, "Failed to update business", err.Error())
		return
	}

	utils.Success(c, "Business updated successfully", business)
}

// UploadBusinessImage stores a listing photo and records its filename
func UploadBusinessImage(c *gin.Context) {
	utils.LogInfo("UploadBusinessImage called")

	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Image file is required", err.Error())
		return
	}

	filename, err := utils.SaveUploadedFile(file, "uploads/businesses")
	if err != nil {
		utils.LogError("Failed to save business image: %v", err)
		utils.BadRequest(c, "Failed to save image", err.Error())
		return
	}

	business.ImageURL = "/uploads/businesses/" + filename
	if err := config.DB.Save(business).Error; err != nil {
		utils.LogError("Failed to update business image: %v", err)
		utils.InternalServerError(c, "Failed to update business image", err.Error())
		return
	}

	utils.Success(c, "Image uploaded successfully", gin.H{"image_url": business.ImageURL})
}

// ownedBusiness loads the business in the path and verifies ownership
func ownedBusiness(c *gin.Context) (*models.Business, bool) {
	user := c.MustGet("user").(models.User)

	var business models.Business
	err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), user.ID).
		First(&business).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Business not found")
		} else {
			utils.LogError("Failed to fetch business: %v", err)
			utils.InternalServerError(c, "Failed to fetch business", err.Error())
		}
		return nil, false
	}
	return &business, true
}
