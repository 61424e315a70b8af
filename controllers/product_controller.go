package controllers

import (
	"strconv"
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// ListBusinessProducts returns the active products of a business addressed
// by its encrypted ID, with current deal pricing applied at read time
func ListBusinessProducts(c *gin.Context) {
	utils.LogInfo("ListBusinessProducts called")

	businessID, err := utils.DecryptID(c.Param("encryptedId"))
	if err != nil {
		utils.LogError("Failed to decrypt business id: %v", err)
		utils.NotFound(c, "Business not found")
		return
	}

	var business models.Business
	if err := config.DB.Where("id = ? AND is_visible = ?", businessID, true).First(&business).Error; err != nil {
		utils.NotFound(c, "Business not found")
		return
	}

	var products []models.Product
	if err := config.DB.Where("business_id = ? AND is_active = ?", businessID, true).
		Order("name asc").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	now := time.Now()
	results := make([]gin.H, len(products))
	for i := range products {
		results[i] = publicProductResponse(&products[i], now)
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"business": business.Name,
		"category": business.Category,
		"products": results,
	})
}

// ProductRequest represents the owner create payload
type ProductRequest struct {
	BusinessID  uint    `json:"business_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Capacity    int     `json:"capacity"`
}

// CreateProduct adds a bookable offering to one of the caller's businesses
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	user := c.MustGet("user").(models.User)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var business models.Business
	if err := config.DB.Where("id = ? AND owner_id = ?", req.BusinessID, user.ID).
		First(&business).Error; err != nil {
		utils.NotFound(c, "Business not found")
		return
	}

	if req.Capacity < 1 {
		req.Capacity = 1
	}

	product := models.Product{
		BusinessID:  business.ID,
		Name:        utils.SanitizeString(req.Name),
		Description: utils.SanitizeString(req.Description),
		Price:       req.Price,
		Capacity:    req.Capacity,
		IsActive:    true,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Product %d created for business %d", product.ID, business.ID)
	utils.Created(c, "Product created successfully", product)
}

// UpdateProductRequest represents the editable product fields
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateProduct edits one of the caller's products
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	productID, ok := pathID(c)
	if !ok {
		return
	}

	product, ok := ownedProduct(c, productID)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Name != nil {
		product.Name = utils.SanitizeString(*req.Name)
	}
	if req.Description != nil {
		product.Description = utils.SanitizeString(*req.Description)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			utils.BadRequest(c, "Price must be greater than zero", nil)
			return
		}
		product.Price = *req.Price
	}
	if req.Capacity != nil && *req.Capacity >= 1 {
		product.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.Save(product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.Success(c, "Product updated successfully", product)
}

// DeleteProduct removes one of the caller's products
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	productID, ok := pathID(c)
	if !ok {
		return
	}

	product, ok := ownedProduct(c, productID)
	if !ok {
		return
	}

	if err := config.DB.Delete(product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.Success(c, "Product deleted successfully", nil)
}

// UploadProductImage stores a product photo and records its filename
func UploadProductImage(c *gin.Context) {
	utils.LogInfo("UploadProductImage called")

	productID, ok := pathID(c)
	if !ok {
		return
	}

	product, ok := ownedProduct(c, productID)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Image file is required", err.Error())
		return
	}

	filename, err := utils.SaveUploadedFile(file, "uploads/products")
	if err != nil {
		utils.LogError("Failed to save product image: %v", err)
		utils.BadRequest(c, "Failed to save image", err.Error())
		return
	}

	product.ImageURL = "/uploads/products/" + filename
	if err := config.DB.Save(product).Error; err != nil {
		utils.LogError("Failed to update product image: %v", err)
		utils.InternalServerError(c, "Failed to update product image", err.Error())
		return
	}

	utils.Success(c, "Image uploaded successfully", gin.H{"image_url": product.ImageURL})
}

// pathID parses the numeric :id path parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
