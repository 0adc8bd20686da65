package models

import "time"

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	Floor      *int   `json:"floor"`
	Status     string `gorm:"size:32;default:available" json:"status"`
	Notes      string `gorm:"type:text" json:"notes,omitempty"`

	// Nullable so a room can exist without a type; deleting a RoomType in use
	// is refused at the service layer, not by the schema.
	RoomTypeID *uint     `gorm:"column:room_type_id;index" json:"room_type_id"`
	RoomType   *RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
