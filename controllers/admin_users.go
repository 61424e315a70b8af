package controllers

import (
	"fmt"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
)

// GetUsers handles user listing for the back office with search,
// pagination, and sorting applied in the query layer
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	pagination := utils.NewPagination(c)
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort_by", "created_at")
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	query := config.DB.Model(&models.User{})

	if search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"email ILIKE ? OR username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			term, term, term, term,
		)
	}

	switch sortBy {
	case "email":
		query = query.Order(fmt.Sprintf("email %s", order))
	case "name":
		query = query.Order(fmt.Sprintf("first_name %s, last_name %s", order, order))
	default:
		query = query.Order(fmt.Sprintf("created_at %s", order))
	}

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var users []models.User
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	cleanUsers := make([]gin.H, len(users))
	for i, user := range users {
		cleanUsers[i] = gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"first_name":  user.FirstName,
			"last_name":   user.LastName,
			"is_blocked":  user.IsBlocked,
			"is_verified": user.IsVerified,
			"is_owner":    user.IsOwner,
			"created_at":  user.CreatedAt,
			"last_login":  user.LastLoginAt,
		}
	}

	utils.LogInfo("Retrieved %d users", len(users))
	utils.Success(c, "Users retrieved successfully", gin.H{
		"users":      cleanUsers,
		"pagination": pagination.Meta(),
		"search":     gin.H{"term": search},
	})
}

// BlockUser blocks a user account
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")
	setUserBlocked(c, true)
}

// UnblockUser restores a blocked user account
func UnblockUser(c *gin.Context) {
	utils.LogInfo("UnblockUser called")
	setUserBlocked(c, false)
}

func setUserBlocked(c *gin.Context, blocked bool) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update block state for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	action := "unblocked"
	if blocked {
		action = "blocked"
	}
	utils.LogInfo("User %d %s", user.ID, action)
	utils.Success(c, fmt.Sprintf("User %s successfully", action), gin.H{
		"id":         user.ID,
		"is_blocked": blocked,
	})
}
