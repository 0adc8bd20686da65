package models

import "time"

type EventBooking struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EventID    uint   `gorm:"column:event_id;index" json:"event_id"`
	Event      *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	GuestName  string `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail string `gorm:"column:guest_email;size:150" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"column:guest_phone;size:50" json:"guest_phone,omitempty"`
	NumTickets int    `gorm:"column:num_tickets;default:1" json:"num_tickets"`

	// tickets × the event's ticket price at booking time.
	TotalPrice *float64 `gorm:"column:total_price" json:"total_price"`
	Status     string   `gorm:"size:32;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
