package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	EventDate   datatypes.Date `gorm:"column:event_date" json:"event_date"`
	StartTime   string         `gorm:"column:start_time;size:16" json:"start_time,omitempty"`
	EndTime     string         `gorm:"column:end_time;size:16" json:"end_time,omitempty"`
	TicketPrice *float64       `gorm:"column:ticket_price" json:"ticket_price"`
	Capacity    int            `json:"capacity"`
	TicketsSold int            `gorm:"column:tickets_sold;default:0" json:"tickets_sold"`
	IsPublic    *bool          `gorm:"column:is_public;default:true" json:"is_public"`
	Status      string         `gorm:"size:32;default:pending" json:"status"`
	ImageURL    string         `gorm:"size:512" json:"image_url,omitempty"`

	VenueID *uint  `gorm:"column:venue_id;index" json:"venue_id"`
	Venue   *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
