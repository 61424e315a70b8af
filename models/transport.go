package models

import (
	"gorm.io/gorm"
)

// TransportationSchedule represents a published route timetable entry
// maintained by the back office (bus, van, ferry and similar)
type TransportationSchedule struct {
	gorm.Model
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Mode          string  `json:"mode"`
	DepartureTime string  `json:"departure_time"`
	DaysOfWeek    string  `json:"days_of_week"`
	Fare          float64 `json:"fare"`
	Notes         string  `json:"notes"`
	IsActive      bool    `json:"is_active" gorm:"default:true"`
}
