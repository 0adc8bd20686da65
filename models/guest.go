package models

import "time"

type Guest struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"column:first_name;size:150" json:"first_name"`
	LastName    string `gorm:"column:last_name;size:150" json:"last_name"`
	Email       string `gorm:"size:150" json:"email,omitempty"`
	Phone       string `gorm:"size:50" json:"phone,omitempty"`
	Address     string `gorm:"type:text" json:"address,omitempty"`
	Nationality string `gorm:"size:100" json:"nationality,omitempty"`
	IDType      string `gorm:"column:id_type;size:50" json:"id_type,omitempty"`
	IDNumber    string `gorm:"column:id_number;size:100" json:"id_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
