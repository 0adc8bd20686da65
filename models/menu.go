package models

import (
	"time"

	"gorm.io/datatypes"
)

type MenuCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int    `gorm:"column:display_order;default:0" json:"display_order"`
	IsActive     *bool  `gorm:"column:is_active;default:true" json:"is_active"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:255" json:"name"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Price       float64       `json:"price"`
	Allergens   StringList    `json:"allergens"`
	IsAvailable *bool         `gorm:"column:is_available;default:true" json:"is_available"`
	IsFeatured  *bool         `gorm:"column:is_featured;default:false" json:"is_featured"`
	ImageURL    string        `gorm:"size:512" json:"image_url,omitempty"`
	CategoryID  *uint         `gorm:"column:category_id;index" json:"category_id"`
	Category    *MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DailySpecial struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Price       float64        `json:"price"`
	Date        datatypes.Date `json:"date"`
	IsActive    *bool          `gorm:"column:is_active;default:true" json:"is_active"`
	ImageURL    string         `gorm:"size:512" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
