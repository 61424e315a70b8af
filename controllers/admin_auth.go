package controllers

import (
	"os"
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// AdminLoginRequest represents the admin login payload
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates a back-office admin and issues a JWT
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Admin login failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Admin login attempt for email: %s", req.Email)

	var admin models.Admin
	if err := config.DB.Where("LOWER(email) = LOWER(?)", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin login failed - not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Admin login failed - wrong password for: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !admin.IsActive {
		utils.LogError("Inactive admin attempted login: %d", admin.ID)
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to generate admin token: %v", err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&admin).Update("last_login", time.Now())

	utils.LogInfo("Admin %d logged in", admin.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":         admin.ID,
			"email":      admin.Email,
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
		},
	})
}

// AdminLogout blacklists the presented admin token
func AdminLogout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if len(token) > 7 {
		blacklisted := models.BlacklistedToken{
			Token:     token[7:],
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		if err := config.DB.Create(&blacklisted).Error; err != nil {
			utils.LogError("Failed to blacklist admin token: %v", err)
		}
	}

	utils.Success(c, "Logout successful", nil)
}

// EnsureDefaultAdmin creates the seed admin account on first boot
func EnsureDefaultAdmin() error {
	var count int64
	if err := config.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping default admin seed")
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:     email,
		Password:  hashed,
		FirstName: "Super",
		LastName:  "Admin",
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Default admin account created: %s", email)
	return nil
}
