package controllers

import (
	"fmt"
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// BrowseBusinesses handles the public directory listing. Search, category
// and municipality filters, sorting and pagination all run in the query
// layer rather than over a fetched slice.
func BrowseBusinesses(c *gin.Context) {
	utils.LogInfo("BrowseBusinesses called")

	pagination := utils.NewPagination(c)
	search := c.Query("search")
	category := c.Query("category")
	municipalityID := c.Query("municipality_id")
	sortBy := c.DefaultQuery("sort_by", "name")
	order := c.DefaultQuery("order", "asc")
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	query := config.DB.Model(&models.Business{}).
		Preload("Municipality").
		Where("is_visible = ?", true)

	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", term, term)
	}
	if category != "" {
		if !models.IsValidCategory(category) {
			utils.LogError("Invalid category filter: %s", category)
			utils.BadRequest(c, "Invalid category", nil)
			return
		}
		query = query.Where("category = ?", category)
	}
	if municipalityID != "" {
		query = query.Where("municipality_id = ?", municipalityID)
	}

	switch sortBy {
	case "name", "category", "created_at":
		query = query.Order(fmt.Sprintf("%s %s", sortBy, order))
	default:
		query = query.Order(fmt.Sprintf("name %s", order))
	}

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var businesses []models.Business
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&businesses).Error; err != nil {
		utils.LogError("Failed to fetch businesses: %v", err)
		utils.InternalServerError(c, "Failed to fetch businesses", err.Error())
		return
	}

	results := make([]gin.H, len(businesses))
	for i := range businesses {
		results[i] = publicBusinessSummary(&businesses[i])
	}

	utils.Success(c, "Businesses retrieved successfully", gin.H{
		"businesses": results,
		"pagination": pagination.Meta(),
	})
}

// GetBusiness returns the public detail page for a business addressed by
// its encrypted ID. The token is presentation only; visibility is still
// checked against the decrypted numeric ID.
func GetBusiness(c *gin.Context) {
	utils.LogInfo("GetBusiness called")

	businessID, err := utils.DecryptID(c.Param("encryptedId"))
	if err != nil {
		utils.LogError("Failed to decrypt business id: %v", err)
		utils.NotFound(c, "Business not found")
		return
	}

	var business models.Business
	err = config.DB.Preload("Municipality").
		Preload("Products", "is_active = ?", true).
		Where("id = ? AND is_visible = ?", businessID, true).
		First(&business).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Business not found")
			return
		}
		utils.LogError("Failed to fetch business %d: %v", businessID, err)
		utils.InternalServerError(c, "Failed to fetch business", err.Error())
		return
	}

	now := time.Now()
	products := make([]gin.H, len(business.Products))
	for i := range business.Products {
		products[i] = publicProductResponse(&business.Products[i], now)
	}

	detail := publicBusinessSummary(&business)
	detail["address"] = business.Address
	detail["contact_number"] = business.ContactNumber
	detail["email"] = business.Email
	detail["products"] = products

	utils.Success(c, "Business retrieved successfully", detail)
}

func publicBusinessSummary(b *models.Business) gin.H {
	encryptedID, err := utils.EncryptID(b.ID)
	if err != nil {
		utils.LogError("Failed to encrypt business id %d: %v", b.ID, err)
	}
	summary := gin.H{
		"encrypted_id": encryptedID,
		"name":         b.Name,
		"description":  b.Description,
		"category":     b.Category,
		"image_url":    b.ImageURL,
		"is_verified":  b.IsVerified,
	}
	if b.Municipality.ID != 0 {
		summary["municipality"] = b.Municipality.Name
	}
	return summary
}

func publicProductResponse(p *models.Product, now time.Time) gin.H {
	discount := activeDealPercent(p.ID, now)
	return gin.H{
		"id":               p.ID,
		"name":             p.Name,
		"description":      p.Description,
		"capacity":         p.Capacity,
		"image_url":        p.ImageURL,
		"original_price":   p.Price,
		"discount_percent": discount,
		"discounted_price": utils.DiscountedPrice(p.Price, discount),
	}
}
