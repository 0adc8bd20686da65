package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
)

type RoomController struct {
	Resource[models.Room]
}

func NewRoomController(db *gorm.DB) *RoomController {
	store := services.NewStore[models.Room](db, "rooms", "room_number", "RoomType")
	roomTypes := services.NewStore[models.RoomType](db, "room_types", "name")

	ctrl := &RoomController{}
	ctrl.Store = store
	ctrl.Statuses = models.RoomStatuses
	ctrl.StatusOf = func(r *models.Room) string { return r.Status }
	ctrl.SearchFields = func(r *models.Room) []string {
		fields := []string{r.RoomNumber, r.Notes}
		if r.Floor != nil {
			fields = append(fields, strconv.Itoa(*r.Floor))
		}
		return fields
	}
	ctrl.BeforeCreate = func(r *models.Room) error {
		if r.RoomNumber == "" {
			return errors.New("le numéro de chambre est obligatoire")
		}
		if r.RoomTypeID != nil {
			if _, err := roomTypes.GetByID(*r.RoomTypeID); err != nil {
				return fmt.Errorf("type de chambre inconnu: %d", *r.RoomTypeID)
			}
		}
		return nil
	}
	return ctrl
}
