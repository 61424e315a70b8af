package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
)

// TransportationScheduleRequest is shared by admin create and update handlers.
type TransportationScheduleRequest struct {
	Origin        string  `json:"origin" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	Mode          string  `json:"mode" binding:"required"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	DaysOfWeek    string  `json:"days_of_week" binding:"required"`
	Fare          float64 `json:"fare" binding:"gte=0"`
	Notes         string  `json:"notes"`
}

func transportationScheduleResponse(s *models.TransportationSchedule) gin.H {
	return gin.H{
		"id":             s.ID,
		"origin":         s.Origin,
		"destination":    s.Destination,
		"mode":           s.Mode,
		"departure_time": s.DepartureTime,
		"days_of_week":   s.DaysOfWeek,
		"fare":           s.Fare,
		"notes":          s.Notes,
		"is_active":      s.IsActive,
	}
}

// ListTransportationSchedules returns active schedules with optional filters
func ListTransportationSchedules(c *gin.Context) {
	utils.LogInfo("ListTransportationSchedules called")

	query := config.DB.Model(&models.TransportationSchedule{}).Where("is_active = ?", true)

	if origin := strings.TrimSpace(c.Query("origin")); origin != "" {
		query = query.Where("origin ILIKE ?", "%"+origin+"%")
	}
	if destination := strings.TrimSpace(c.Query("destination")); destination != "" {
		query = query.Where("destination ILIKE ?", "%"+destination+"%")
	}
	if mode := strings.TrimSpace(c.Query("mode")); mode != "" {
		query = query.Where("LOWER(mode) = ?", strings.ToLower(mode))
	}

	pagination := utils.NewPagination(c)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count transportation schedules: %v", err)
		utils.InternalServerError(c, "Failed to fetch schedules", err.Error())
		return
	}
	pagination.SetTotal(total)

	var schedules []models.TransportationSchedule
	if err := query.Order("origin ASC, departure_time ASC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&schedules).Error; err != nil {
		utils.LogError("Failed to fetch transportation schedules: %v", err)
		utils.InternalServerError(c, "Failed to fetch schedules", err.Error())
		return
	}

	rows := make([]gin.H, len(schedules))
	for i := range schedules {
		rows[i] = transportationScheduleResponse(&schedules[i])
	}

	utils.Success(c, "Transportation schedules retrieved", gin.H{
		"schedules":  rows,
		"pagination": pagination.Meta(),
	})
}

// CreateTransportationSchedule adds a schedule (admin only)
func CreateTransportationSchedule(c *gin.Context) {
	utils.LogInfo("CreateTransportationSchedule called")

	var req TransportationScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidateTimeSlot(req.DepartureTime); !valid {
		utils.BadRequest(c, "Invalid departure time", msg)
		return
	}

	schedule := models.TransportationSchedule{
		Origin:        utils.SanitizeString(req.Origin),
		Destination:   utils.SanitizeString(req.Destination),
		Mode:          strings.ToLower(utils.SanitizeString(req.Mode)),
		DepartureTime: req.DepartureTime,
		DaysOfWeek:    utils.SanitizeString(req.DaysOfWeek),
		Fare:          req.Fare,
		Notes:         utils.SanitizeString(req.Notes),
		IsActive:      true,
	}

	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.LogError("Failed to create transportation schedule: %v", err)
		utils.InternalServerError(c, "Failed to create schedule", err.Error())
		return
	}

	utils.LogInfo("Transportation schedule %d created: %s to %s", schedule.ID, schedule.Origin, schedule.Destination)
	utils.Created(c, "Transportation schedule created", gin.H{"schedule": transportationScheduleResponse(&schedule)})
}

// UpdateTransportationSchedule edits a schedule (admin only)
func UpdateTransportationSchedule(c *gin.Context) {
	utils.LogInfo("UpdateTransportationSchedule called")

	id, ok := pathID(c)
	if !ok {
		return
	}

	var schedule models.TransportationSchedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		utils.NotFound(c, "Transportation schedule not found")
		return
	}

	var req struct {
		Origin        *string  `json:"origin"`
		Destination   *string  `json:"destination"`
		Mode          *string  `json:"mode"`
		DepartureTime *string  `json:"departure_time"`
		DaysOfWeek    *string  `json:"days_of_week"`
		Fare          *float64 `json:"fare"`
		Notes         *string  `json:"notes"`
		IsActive      *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.Origin != nil {
		schedule.Origin = utils.SanitizeString(*req.Origin)
	}
	if req.Destination != nil {
		schedule.Destination = utils.SanitizeString(*req.Destination)
	}
	if req.Mode != nil {
		schedule.Mode = strings.ToLower(utils.SanitizeString(*req.Mode))
	}
	if req.DepartureTime != nil {
		if valid, msg := utils.ValidateTimeSlot(*req.DepartureTime); !valid {
			utils.BadRequest(c, "Invalid departure time", msg)
			return
		}
		schedule.DepartureTime = *req.DepartureTime
	}
	if req.DaysOfWeek != nil {
		schedule.DaysOfWeek = utils.SanitizeString(*req.DaysOfWeek)
	}
	if req.Fare != nil {
		if *req.Fare < 0 {
			utils.BadRequest(c, "Invalid fare", "Fare cannot be negative")
			return
		}
		schedule.Fare = *req.Fare
	}
	if req.Notes != nil {
		schedule.Notes = utils.SanitizeString(*req.Notes)
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&schedule).Error; err != nil {
		utils.LogError("Failed to update transportation schedule %d: %v", schedule.ID, err)
		utils.InternalServerError(c, "Failed to update schedule", err.Error())
		return
	}

	utils.Success(c, "Transportation schedule updated", gin.H{"schedule": transportationScheduleResponse(&schedule)})
}

// DeleteTransportationSchedule removes a schedule (admin only)
func DeleteTransportationSchedule(c *gin.Context) {
	utils.LogInfo("DeleteTransportationSchedule called")

	id, ok := pathID(c)
	if !ok {
		return
	}

	var schedule models.TransportationSchedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		utils.NotFound(c, "Transportation schedule not found")
		return
	}

	if err := config.DB.Delete(&schedule).Error; err != nil {
		utils.LogError("Failed to delete transportation schedule %d: %v", schedule.ID, err)
		utils.InternalServerError(c, "Failed to delete schedule", err.Error())
		return
	}

	utils.Success(c, "Transportation schedule deleted", nil)
}
