package controllers

import (
	"errors"

	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
)

type GuestController struct {
	Resource[models.Guest]
}

func NewGuestController(db *gorm.DB) *GuestController {
	ctrl := &GuestController{}
	ctrl.Store = services.NewStore[models.Guest](db, "guests", "last_name")
	ctrl.SearchFields = func(g *models.Guest) []string {
		return []string{g.FirstName, g.LastName, g.Email, g.Phone}
	}
	ctrl.BeforeCreate = func(g *models.Guest) error {
		if g.FirstName == "" || g.LastName == "" {
			return errors.New("le nom et le prénom sont obligatoires")
		}
		return nil
	}
	return ctrl
}
