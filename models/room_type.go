package models

import "time"

type RoomType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Capacity    int     `gorm:"default:2" json:"capacity"`
	BasePrice   float64 `gorm:"column:base_price" json:"base_price"`
	// Informational count set at create/edit time; allowed to drift from the
	// actual number of rooms referencing this type.
	TotalRooms int        `gorm:"column:total_rooms" json:"total_rooms"`
	Amenities  StringList `json:"amenities"`
	ImageURL   string     `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
