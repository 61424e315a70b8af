package models

import (
	"gorm.io/gorm"
)

// Business category constants
const (
	CategoryAccommodation = "accommodation"
	CategoryActivity      = "activity"
	CategoryRestaurant    = "restaurant"
	CategoryShop          = "shop"
)

// ValidCategories lists the categories a business can register under
var ValidCategories = []string{
	CategoryAccommodation,
	CategoryActivity,
	CategoryRestaurant,
	CategoryShop,
}

// IsValidCategory reports whether the given string is a known business category
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Business represents a listed establishment owned by a user
type Business struct {
	gorm.Model
	OwnerID        uint         `json:"owner_id"`
	Owner          User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	MunicipalityID uint         `json:"municipality_id"`
	Municipality   Municipality `json:"municipality,omitempty" gorm:"foreignKey:MunicipalityID"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	Address        string       `json:"address"`
	ContactNumber  string       `json:"contact_number"`
	Email          string       `json:"email"`
	ImageURL       string       `json:"image_url"`
	IsVerified     bool         `json:"is_verified" gorm:"default:false"`
	IsVisible      bool         `json:"is_visible" gorm:"default:true"`
	Products       []Product    `json:"products,omitempty" gorm:"foreignKey:BusinessID"`
}

// Product represents a bookable offering of a business (room, tour, table, item)
type Product struct {
	gorm.Model
	BusinessID  uint     `json:"business_id"`
	Business    Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity" gorm:"default:1"`
	ImageURL    string   `json:"image_url"`
	IsActive    bool     `json:"is_active" gorm:"default:true"`
	Deals       []Deal   `json:"deals,omitempty" gorm:"foreignKey:ProductID"`
}
