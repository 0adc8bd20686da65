package models

import "time"

// Profile is a staff account: the authentication identity plus the
// role/department pair every admin view is gated on.
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"uniqueIndex;size:150" json:"email"`
	Password   string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	FullName   string    `gorm:"size:255" json:"full_name"`
	Role       string    `gorm:"size:32;default:employee" json:"role"`
	Department *string   `gorm:"size:32" json:"department"`
	AvatarURL  string    `gorm:"size:512" json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DepartmentOrEmpty flattens the nullable column for gate checks.
func (p *Profile) DepartmentOrEmpty() string {
	if p.Department == nil {
		return ""
	}
	return *p.Department
}
