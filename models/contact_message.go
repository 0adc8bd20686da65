package models

import "time"

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Subject string `gorm:"size:255" json:"subject,omitempty"`
	Message string `gorm:"type:text" json:"message"`

	IsRead      bool       `gorm:"column:is_read;default:false" json:"is_read"`
	ProcessedAt *time.Time `gorm:"column:processed_at" json:"processed_at"`
	ProcessedBy string     `gorm:"column:processed_by;size:255" json:"processed_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
