package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/utils"
)

type ReservationService struct {
	Store     *Store[models.Reservation]
	roomTypes *Store[models.RoomType]
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		Store:     NewStore[models.Reservation](db, "reservations", "created_at DESC", "Guest", "RoomType", "Room"),
		roomTypes: NewStore[models.RoomType](db, "room_types", "base_price"),
	}
}

// ReservationInput carries the editable fields of the creation form. Dates
// arrive already parsed; cross-field checks (check-out after check-in) are
// deliberately absent, matching the store-side schema-only validation.
type ReservationInput struct {
	GuestID         uint
	RoomTypeID      uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int
	SpecialRequests string
	CreatedBy       *uint
}

// Nights is ceil((out − in) / 24h), the same arithmetic the booking form
// applies before insert.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Create persists a new reservation. The total price is computed once here,
// from a separately fetched RoomType, and is never recomputed when the dates
// are edited later; an unknown room type yields a total of zero. The two
// store calls are plain sequential operations with no atomicity between them.
func (s *ReservationService) Create(in ReservationInput) (*models.Reservation, error) {
	total := 0.0
	roomType, err := s.roomTypes.GetByID(in.RoomTypeID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if roomType != nil {
		total = float64(Nights(in.CheckInDate, in.CheckOutDate)) * roomType.BasePrice
	}

	guestID := in.GuestID
	roomTypeID := in.RoomTypeID
	reservation := models.Reservation{
		ReservationNumber: utils.NewReservationNumber(),
		CheckInDate:       datatypes.Date(in.CheckInDate),
		CheckOutDate:      datatypes.Date(in.CheckOutDate),
		NumGuests:         in.NumGuests,
		SpecialRequests:   in.SpecialRequests,
		Status:            models.ReservationPending,
		TotalPrice:        &total,
		GuestID:           &guestID,
		RoomTypeID:        &roomTypeID,
		CreatedBy:         in.CreatedBy,
	}
	if err := s.Store.Create(&reservation); err != nil {
		return nil, err
	}
	return s.Store.GetByID(reservation.ID)
}
