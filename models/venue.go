package models

import "time"

type Venue struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:255" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Capacity    int        `json:"capacity"`
	HourlyRate  *float64   `gorm:"column:hourly_rate" json:"hourly_rate"`
	Amenities   StringList `json:"amenities"`
	ImageURL    string     `gorm:"size:512" json:"image_url,omitempty"`
	IsActive    *bool      `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
