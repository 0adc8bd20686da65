package services

import (
	"gorm.io/gorm"

	"byoma-backend/models"
)

type EventBookingService struct {
	Store  *Store[models.EventBooking]
	events *Store[models.Event]
}

func NewEventBookingService(db *gorm.DB) *EventBookingService {
	return &EventBookingService{
		Store:  NewStore[models.EventBooking](db, "event_bookings", "created_at DESC", "Event"),
		events: NewStore[models.Event](db, "events", "event_date"),
	}
}

type EventBookingInput struct {
	EventID    uint
	GuestName  string
	GuestEmail string
	GuestPhone string
	NumTickets int
}

// Create books tickets for an event. The total is tickets × the event's
// ticket price at booking time, and tickets_sold is bumped with a plain
// follow-up update; there is no capacity guard and no atomicity between the
// two writes.
func (s *EventBookingService) Create(in EventBookingInput) (*models.EventBooking, error) {
	event, err := s.events.GetByID(in.EventID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	if event.TicketPrice != nil {
		total = float64(in.NumTickets) * *event.TicketPrice
	}

	booking := models.EventBooking{
		EventID:    in.EventID,
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		GuestPhone: in.GuestPhone,
		NumTickets: in.NumTickets,
		TotalPrice: &total,
		Status:     models.BookingPending,
	}
	if err := s.Store.Create(&booking); err != nil {
		return nil, err
	}

	if _, err := s.events.UpdateByID(event.ID, map[string]any{
		"tickets_sold": event.TicketsSold + in.NumTickets,
	}); err != nil {
		return nil, err
	}
	return s.Store.GetByID(booking.ID)
}
