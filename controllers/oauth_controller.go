package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateSessionKey = "oauth_state"

// GoogleLogin redirects to Google's consent screen with a CSRF state nonce
func GoogleLogin(c *gin.Context) {
	utils.LogInfo("GoogleLogin called")

	state := uuid.New().String()
	session := sessions.Default(c)
	session.Set(oauthStateSessionKey, state)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save oauth state: %v", err)
		utils.InternalServerError(c, "Failed to start Google login", nil)
		return
	}

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

type googleUserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	GivenName string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// GoogleCallback exchanges the authorization code, provisions the account
// if needed, and issues a JWT
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	session := sessions.Default(c)
	expectedState, _ := session.Get(oauthStateSessionKey).(string)
	session.Delete(oauthStateSessionKey)
	_ = session.Save()

	if expectedState == "" || c.Query("state") != expectedState {
		utils.LogError("Invalid oauth state")
		utils.Unauthorized(c, "Invalid OAuth state")
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "Missing authorization code", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.LogError("Failed to exchange oauth code: %v", err)
		utils.Unauthorized(c, "Google login failed")
		return
	}

	client := config.GoogleOAuthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.InternalServerError(c, "Google login failed", nil)
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		utils.LogError("Failed to decode Google user info: %v", err)
		utils.InternalServerError(c, "Google login failed", nil)
		return
	}

	if info.Email == "" {
		utils.Unauthorized(c, "Google account has no email")
		return
	}

	var user models.User
	err = config.DB.Where("google_id = ? OR LOWER(email) = LOWER(?)", info.ID, info.Email).
		First(&user).Error
	if err != nil {
		// First Google login provisions an account.
		user = models.User{
			Username:   generateUsernameFromEmail(info.Email),
			Email:      strings.ToLower(info.Email),
			FirstName:  info.GivenName,
			LastName:   info.FamilyName,
			GoogleID:   info.ID,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to provision Google user %s: %v", info.Email, err)
			utils.InternalServerError(c, "Failed to create account", err.Error())
			return
		}
		utils.LogInfo("Provisioned user %d from Google login", user.ID)
	} else if user.GoogleID == "" {
		config.DB.Model(&user).Update("google_id", info.ID)
	}

	if user.IsBlocked {
		utils.Forbidden(c, "Account is blocked")
		return
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.Success(c, "Login successful", gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func generateUsernameFromEmail(email string) string {
	base := strings.Split(email, "@")[0]
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, base)
	if len(base) > 14 {
		base = base[:14]
	}
	return fmt.Sprintf("%s_%s", base, uuid.New().String()[:5])
}
