package models

import (
	"time"

	"gorm.io/datatypes"
)

type Reservation struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	ReservationNumber string         `gorm:"column:reservation_number;uniqueIndex;size:64" json:"reservation_number"`
	CheckInDate       datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate      datatypes.Date `gorm:"column:check_out_date" json:"check_out_date"`
	NumGuests         int            `gorm:"column:num_guests;default:1" json:"num_guests"`
	SpecialRequests   string         `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`
	Status            string         `gorm:"size:32;default:pending" json:"status"`

	// Set once at creation from nights × the room type's base price; never
	// recomputed when dates are edited afterwards.
	TotalPrice *float64 `gorm:"column:total_price" json:"total_price"`

	GuestID    *uint     `gorm:"column:guest_id;index" json:"guest_id"`
	Guest      *Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	RoomTypeID *uint     `gorm:"column:room_type_id;index" json:"room_type_id"`
	RoomType   *RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	RoomID     *uint     `gorm:"column:room_id;index" json:"room_id"`
	Room       *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedBy *uint     `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
