package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
)

// AdminListBusinesses returns all businesses (verified or not) for the back office
func AdminListBusinesses(c *gin.Context) {
	utils.LogInfo("AdminListBusinesses called")

	query := config.DB.Model(&models.Business{}).Preload("Municipality")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", term, term)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if !models.IsValidCategory(category) {
			utils.BadRequest(c, "Invalid category", "Category must be one of: "+strings.Join(models.ValidCategories, ", "))
			return
		}
		query = query.Where("category = ?", category)
	}
	if verified := c.Query("verified"); verified == "true" || verified == "false" {
		query = query.Where("is_verified = ?", verified == "true")
	}
	if visible := c.Query("visible"); visible == "true" || visible == "false" {
		query = query.Where("is_visible = ?", visible == "true")
	}

	pagination := utils.NewPagination(c)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count businesses: %v", err)
		utils.InternalServerError(c, "Failed to fetch businesses", err.Error())
		return
	}
	pagination.SetTotal(total)

	var businesses []models.Business
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&businesses).Error; err != nil {
		utils.LogError("Failed to fetch businesses: %v", err)
		utils.InternalServerError(c, "Failed to fetch businesses", err.Error())
		return
	}

	rows := make([]gin.H, len(businesses))
	for i, b := range businesses {
		rows[i] = gin.H{
			"id":           b.ID,
			"name":         b.Name,
			"category":     b.Category,
			"location":     b.Address,
			"municipality": b.Municipality.Name,
			"owner_id":     b.OwnerID,
			"is_verified":  b.IsVerified,
			"is_visible":   b.IsVisible,
			"created_at":   b.CreatedAt,
		}
	}

	utils.Success(c, "Businesses retrieved", gin.H{
		"businesses": rows,
		"pagination": pagination.Meta(),
	})
}

func setBusinessVisibility(c *gin.Context, visible bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var business models.Business
	if err := config.DB.First(&business, id).Error; err != nil {
		utils.NotFound(c, "Business not found")
		return
	}

	if business.IsVisible == visible {
		state := "hidden"
		if visible {
			state = "visible"
		}
		utils.BadRequest(c, "Business is already "+state, nil)
		return
	}

	if err := config.DB.Model(&business).Update("is_visible", visible).Error; err != nil {
		utils.LogError("Failed to update visibility for business %d: %v", business.ID, err)
		utils.InternalServerError(c, "Failed to update business", err.Error())
		return
	}

	action := "hidden from"
	if visible {
		action = "restored to"
	}
	utils.LogInfo("Business %d %s the public directory", business.ID, action)
	utils.Success(c, "Business "+action+" the public directory", gin.H{
		"id":         business.ID,
		"name":       business.Name,
		"is_visible": visible,
	})
}

// HideBusiness removes a business from the public directory (admin only)
func HideBusiness(c *gin.Context) {
	utils.LogInfo("HideBusiness called")
	setBusinessVisibility(c, false)
}

// ShowBusiness restores a business to the public directory (admin only)
func ShowBusiness(c *gin.Context) {
	utils.LogInfo("ShowBusiness called")
	setBusinessVisibility(c, true)
}
