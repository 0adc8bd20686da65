package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"byoma-backend/models"
)

// ErrRoomTypeInUse reports a delete refused because rooms still reference
// the type.
var ErrRoomTypeInUse = errors.New("room type in use")

type RoomTypeService struct {
	Store *Store[models.RoomType]
	rooms *Store[models.Room]
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{
		Store: NewStore[models.RoomType](db, "room_types", "name"),
		rooms: NewStore[models.Room](db, "rooms", "room_number"),
	}
}

// Delete refuses to remove a type while any room references it. The count
// runs before the store delete is issued; the schema itself enforces
// nothing.
func (s *RoomTypeService) Delete(id uint) error {
	n, err := s.rooms.Count(Where("room_type_id = ?", id))
	if err != nil {
		return err
	}
	if n > 0 {
		return &StoreError{
			Op:      "room_types.delete",
			Message: fmt.Sprintf("Ce type est utilisé par %d chambre(s)", n),
			Err:     ErrRoomTypeInUse,
		}
	}
	return s.Store.DeleteByID(id)
}
