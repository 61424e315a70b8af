package controllers

import (
	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// ListMunicipalities returns all destination towns
func ListMunicipalities(c *gin.Context) {
	utils.LogInfo("ListMunicipalities called")

	var municipalities []models.Municipality
	if err := config.DB.Order("name asc").Find(&municipalities).Error; err != nil {
		utils.LogError("Failed to fetch municipalities: %v", err)
		utils.InternalServerError(c, "Failed to fetch municipalities", err.Error())
		return
	}

	utils.Success(c, "Municipalities retrieved successfully", gin.H{"municipalities": municipalities})
}

// GetMunicipality returns one town with its visible businesses
func GetMunicipality(c *gin.Context) {
	utils.LogInfo("GetMunicipality called")

	var municipality models.Municipality
	err := config.DB.Preload("Businesses", "is_visible = ?", true).
		First(&municipality, c.Param("id")).Error
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Municipality not found")
			return
		}
		utils.LogError("Failed to fetch municipality: %v", err)
		utils.InternalServerError(c, "Failed to fetch municipality", err.Error())
		return
	}

	businesses := make([]gin.H, len(municipality.Businesses))
	for i := range municipality.Businesses {
		businesses[i] = publicBusinessSummary(&municipality.Businesses[i])
	}

	utils.Success(c, "Municipality retrieved successfully", gin.H{
		"id":          municipality.ID,
		"name":        municipality.Name,
		"description": municipality.Description,
		"highlights":  municipality.Highlights,
		"image_url":   municipality.ImageURL,
		"businesses":  businesses,
	})
}

// MunicipalityRequest represents the admin create/update payload
type MunicipalityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Highlights  string `json:"highlights"`
	ImageURL    string `json:"image_url"`
}

// CreateMunicipality adds a destination town (admin)
func CreateMunicipality(c *gin.Context) {
	utils.LogInfo("CreateMunicipality called")

	var req MunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	municipality := models.Municipality{
		Name:        utils.SanitizeString(req.Name),
		Description: utils.SanitizeString(req.Description),
		Highlights:  utils.SanitizeString(req.Highlights),
		ImageURL:    req.ImageURL,
	}

	if err := config.DB.Create(&municipality).Error; err != nil {
		utils.LogError("Failed to create municipality: %v", err)
		utils.InternalServerError(c, "Failed to create municipality", err.Error())
		return
	}

	utils.LogInfo("Municipality %d created: %s", municipality.ID, municipality.Name)
	utils.Created(c, "Municipality created successfully", municipality)
}

// UpdateMunicipality edits a destination town (admin)
func UpdateMunicipality(c *gin.Context) {
	utils.LogInfo("UpdateMunicipality called")

	var municipality models.Municipality
	if err := config.DB.First(&municipality, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Municipality not found")
		return
	}

	var req MunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	municipality.Name = utils.SanitizeString(req.Name)
	municipality.Description = utils.SanitizeString(req.Description)
	municipality.Highlights = utils.SanitizeString(req.Highlights)
	municipality.ImageURL = req.ImageURL

	if err := config.DB.Save(&municipality).Error; err != nil {
		utils.LogError("Failed to update municipality %d: %v", municipality.ID, err)
		utils.InternalServerError(c, "Failed to update municipality", err.Error())
		return
	}

	utils.Success(c, "Municipality updated successfully", municipality)
}

// DeleteMunicipality removes a destination town (admin)
func DeleteMunicipality(c *gin.Context) {
	utils.LogInfo("DeleteMunicipality called")

	if err := config.DB.Delete(&models.Municipality{}, c.Param("id")).Error; err != nil {
		utils.LogError("Failed to delete municipality: %v", err)
		utils.InternalServerError(c, "Failed to delete municipality", err.Error())
		return
	}

	utils.Success(c, "Municipality deleted successfully", nil)
}
