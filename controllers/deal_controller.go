package controllers

import (
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// CreateDealRequest represents the request body for creating a new deal
type CreateDealRequest struct {
	ProductID       uint      `json:"product_id" binding:"required"`
	DiscountPercent float64   `json:"discount_percent" binding:"required"`
	ExpiresAt       time.Time `json:"expires_at" binding:"required"`
}

// CreateDeal creates a new deal for one of the owner's products.
// The discount bound is exclusive on both ends: 0 < d < 100.
func CreateDeal(c *gin.Context) {
	utils.LogInfo("CreateDeal called")

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.DiscountPercent <= 0 || req.DiscountPercent >= 100 {
		utils.LogError("Invalid discount percent: %.2f", req.DiscountPercent)
		utils.BadRequest(c, "Discount must be between 0 and 100 (exclusive)", nil)
		return
	}

	if !req.ExpiresAt.After(time.Now()) {
		utils.LogError("Invalid expiration date for deal: date is in the past")
		utils.BadRequest(c, "Expiration date must be in the future", nil)
		return
	}

	product, ok := ownedProduct(c, req.ProductID)
	if !ok {
		return
	}

	deal := models.Deal{
		ProductID:       product.ID,
		DiscountPercent: req.DiscountPercent,
		ExpiresAt:       req.ExpiresAt,
	}

	if err := config.DB.Create(&deal).Error; err != nil {
		utils.LogError("Failed to create deal: %v", err)
		utils.InternalServerError(c, "Failed to create deal", err.Error())
		return
	}

	utils.LogInfo("Deal %d created for product %d (%.0f%%)", deal.ID, deal.ProductID, deal.DiscountPercent)
	utils.Created(c, "Deal created successfully", dealResponse(&deal, time.Now()))
}

// UpdateDealRequest represents the editable fields of a deal
type UpdateDealRequest struct {
	DiscountPercent *float64   `json:"discount_percent"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

// UpdateDeal edits a deal's discount or expiration
func UpdateDeal(c *gin.Context) {
	utils.LogInfo("UpdateDeal called")

	deal, ok := ownedDeal(c)
	if !ok {
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.DiscountPercent != nil {
		if *req.DiscountPercent <= 0 || *req.DiscountPercent >= 100 {
			utils.LogError("Invalid discount percent: %.2f", *req.DiscountPercent)
			utils.BadRequest(c, "Discount must be between 0 and 100 (exclusive)", nil)
			return
		}
		deal.DiscountPercent = *req.DiscountPercent
	}

	if req.ExpiresAt != nil {
		if !req.ExpiresAt.After(time.Now()) {
			utils.LogError("Invalid expiration date for deal %d: date is in the past", deal.ID)
			utils.BadRequest(c, "Expiration date must be in the future", nil)
			return
		}
		deal.ExpiresAt = *req.ExpiresAt
	}

	if err := config.DB.Save(deal).Error; err != nil {
		utils.LogError("Failed to update deal %d: %v", deal.ID, err)
		utils.InternalServerError(c, "Failed to update deal", err.Error())
		return
	}

	utils.LogInfo("Deal %d updated", deal.ID)
	utils.Success(c, "Deal updated successfully", dealResponse(deal, time.Now()))
}

// DeleteDeal removes a deal
func DeleteDeal(c *gin.Context) {
	utils.LogInfo("DeleteDeal called")

	deal, ok := ownedDeal(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(deal).Error; err != nil {
		utils.LogError("Failed to delete deal %d: %v", deal.ID, err)
		utils.InternalServerError(c, "Failed to delete deal", err.Error())
		return
	}

	utils.LogInfo("Deal %d deleted", deal.ID)
	utils.Success(c, "Deal deleted successfully", nil)
}

// ListDeals returns all deals across the owner's products, with active vs
// expired recomputed from the expiration date at render time
func ListDeals(c *gin.Context) {
	utils.LogInfo("ListDeals called")

	user := c.MustGet("user").(models.User)

	var deals []models.Deal
	err := config.DB.
		Joins("JOIN products ON products.id = deals.product_id").
		Joins("JOIN businesses ON businesses.id = products.business_id").
		Where("businesses.owner_id = ?", user.ID).
		Preload("Product").
		Order("deals.created_at DESC").
		Find(&deals).Error
	if err != nil {
		utils.LogError("Failed to fetch deals: %v", err)
		utils.InternalServerError(c, "Failed to fetch deals", err.Error())
		return
	}

	now := time.Now()
	results := make([]gin.H, len(deals))
	for i := range deals {
		results[i] = dealResponse(&deals[i], now)
	}

	utils.Success(c, "Deals retrieved successfully", gin.H{"deals": results})
}

func dealResponse(deal *models.Deal, now time.Time) gin.H {
	resp := gin.H{
		"id":               deal.ID,
		"product_id":       deal.ProductID,
		"discount_percent": deal.DiscountPercent,
		"expires_at":       deal.ExpiresAt.Format("2006-01-02"),
		"status":           deal.StatusAt(now),
		"created_at":       deal.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if deal.Product.ID != 0 {
		resp["product_name"] = deal.Product.Name
		resp["original_price"] = deal.Product.Price
		resp["discounted_price"] = utils.DiscountedPrice(deal.Product.Price, deal.DiscountPercent)
	}
	return resp
}

// ownedDeal loads the deal in the path and verifies the caller owns it
func ownedDeal(c *gin.Context) (*models.Deal, bool) {
	user := c.MustGet("user").(models.User)

	var deal models.Deal
	err := config.DB.
		Joins("JOIN products ON products.id = deals.product_id").
		Joins("JOIN businesses ON businesses.id = products.business_id").
		Where("deals.id = ? AND businesses.owner_id = ?", c.Param("id"), user.ID).
		Preload("Product").
		First(&deal).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Deal not found")
		} else {
			utils.LogError("Failed to fetch deal: %v", err)
			utils.InternalServerError(c, "Failed to fetch deal", err.Error())
		}
		return nil, false
	}
	return &deal, true
}

// ownedProduct loads a product and verifies the caller owns its business
func ownedProduct(c *gin.Context, productID uint) (*models.Product, bool) {
	user := c.MustGet("user").(models.User)

	var product models.Product
	err := config.DB.
		Joins("JOIN businesses ON businesses.id = products.business_id").
		Where("products.id = ? AND businesses.owner_id = ?", productID, user.ID).
		First(&product).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Product not found")
		} else {
			utils.LogError("Failed to fetch product: %v", err)
			utils.InternalServerError(c, "Failed to fetch product", err.Error())
		}
		return nil, false
	}
	return &product, true
}
