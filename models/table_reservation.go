package models

import (
	"time"

	"gorm.io/datatypes"
)

type TableReservation struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	GuestName       string         `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail      string         `gorm:"column:guest_email;size:150" json:"guest_email,omitempty"`
	GuestPhone      string         `gorm:"column:guest_phone;size:50" json:"guest_phone,omitempty"`
	ReservationDate datatypes.Date `gorm:"column:reservation_date" json:"reservation_date"`
	ReservationTime string         `gorm:"column:reservation_time;size:16" json:"reservation_time"`
	NumGuests       int            `gorm:"column:num_guests;default:1" json:"num_guests"`
	TableNumber     string         `gorm:"column:table_number;size:50" json:"table_number,omitempty"`
	SpecialRequests string         `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`
	Status          string         `gorm:"size:32;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
