package controllers

import (
	"strings"
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

// RegistrationData represents the registration data stored in session until
// the OTP is verified
type RegistrationData struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
}

const registrationSessionKey = "registration_data"

// RegisterUser validates the registration payload, emails an OTP, and parks
// the pending registration in the session. The account is only created once
// the OTP is verified.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please check your input data and ensure all required fields are provided correctly.")
		return
	}

	utils.LogInfo("Registration attempt for email: %s, username: %s", req.Email, req.Username)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.BadRequest(c, "Invalid username", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", "Password and confirm password must be the same.")
		return
	}
	if req.FirstName != "" {
		if valid, msg := utils.ValidateName(req.FirstName); !valid {
			utils.BadRequest(c, "Invalid first name", msg)
			return
		}
	}
	if req.LastName != "" {
		if valid, msg := utils.ValidateName(req.LastName); !valid {
			utils.BadRequest(c, "Invalid last name", msg)
			return
		}
	}
	if req.Phone != "" {
		valid, formatted := utils.ValidatePhone(req.Phone)
		if !valid {
			utils.BadRequest(c, "Invalid phone", formatted)
			return
		}
		req.Phone = formatted
	}

	var existing models.User
	if err := config.DB.Where("LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)",
		req.Email, req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration attempt failed - Email or username already taken: %s", req.Email)
		utils.Conflict(c, "Email or username already registered", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	otp := utils.GenerateOTP()
	data := RegistrationData{
		Email:      strings.ToLower(req.Email),
		Password:   hashed,
		OTP:        otp,
		OTPExpires: time.Now().Add(15 * time.Minute).Unix(),
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
	}

	session := sessions.Default(c)
	session.Set(registrationSessionKey, data)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save registration session: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	if err := utils.SendOTP(data.Email, otp); err != nil {
		utils.LogError("Failed to send OTP email to %s: %v", data.Email, err)
		utils.InternalServerError(c, "Failed to send verification email", nil)
		return
	}

	utils.LogInfo("OTP sent for registration: %s", data.Email)
	utils.Success(c, "OTP sent to your email. Please verify to complete registration.", gin.H{
		"email": data.Email,
	})
}

// VerifyOTPRequest represents the OTP verification payload
type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// VerifyOTP completes registration by checking the emailed OTP and creating
// the account
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")

	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", "OTP is required")
		return
	}

	session := sessions.Default(c)
	raw := session.Get(registrationSessionKey)
	if raw == nil {
		utils.BadRequest(c, "No registration in progress", nil)
		return
	}
	data, ok := raw.(RegistrationData)
	if !ok {
		utils.BadRequest(c, "No registration in progress", nil)
		return
	}

	if time.Now().Unix() > data.OTPExpires {
		utils.LogError("Expired OTP for %s", data.Email)
		utils.BadRequest(c, "OTP has expired. Please register again.", nil)
		return
	}
	if req.OTP != data.OTP {
		utils.LogError("Incorrect OTP for %s", data.Email)
		utils.BadRequest(c, "Incorrect OTP", nil)
		return
	}

	user := models.User{
		Username:   data.Username,
		Email:      data.Email,
		Password:   data.Password,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		IsVerified: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", data.Email, err)
		utils.InternalServerError(c, "Failed to create account", err.Error())
		return
	}

	session.Delete(registrationSessionKey)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear registration session: %v", err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for new user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Account created, but login failed. Please login manually.", nil)
		return
	}

	utils.LogInfo("User %d registered and verified: %s", user.ID, user.Email)
	utils.Created(c, "Registration complete", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser authenticates a user and issues a JWT
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Login attempt for email: %s", req.Email)

	var user models.User
	if err := config.DB.Where("LOWER(email) = LOWER(?)", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed - user not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if user.IsBlocked {
		utils.LogError("Login attempt by blocked user: %d", user.ID)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"is_owner":   user.IsOwner,
		},
	})
}

// UserLogout clears the session and blacklists the presented token
func UserLogout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if exists {
		utils.LogInfo("User %d logging out", userID)
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save cleared session: %v", err)
		utils.InternalServerError(c, "Failed to logout", nil)
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		blacklisted := models.BlacklistedToken{
			Token:     token,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		if err := config.DB.Create(&blacklisted).Error; err != nil {
			utils.LogError("Failed to blacklist token: %v", err)
		}
	}

	utils.Success(c, "Logout successful", nil)
}

// GetProfile returns the authenticated user's account data
func GetProfile(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"phone":         user.Phone,
		"profile_image": user.ProfileImage,
		"is_owner":      user.IsOwner,
		"is_verified":   user.IsVerified,
		"last_login":    user.LastLoginAt,
	})
}
