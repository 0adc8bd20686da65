package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
	"byoma-backend/utils"
	"byoma-backend/validate"
)

type VenueController struct {
	Resource[models.Venue]
}

func NewVenueController(db *gorm.DB) *VenueController {
	ctrl := &VenueController{}
	ctrl.Store = services.NewStore[models.Venue](db, "venues", "name")
	ctrl.SearchFields = func(v *models.Venue) []string {
		return []string{v.Name, v.Description}
	}
	return ctrl
}

type EventController struct {
	Resource[models.Event]
	venues *services.Store[models.Venue]
}

type eventPayload struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	EventDate   string   `json:"event_date" validate:"required"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	TicketPrice *float64 `json:"ticket_price"`
	Capacity    int      `json:"capacity" validate:"min=0"`
	IsPublic    *bool    `json:"is_public"`
	ImageURL    string   `json:"image_url"`
	VenueID     *uint    `json:"venue_id"`
}

func NewEventController(db *gorm.DB) *EventController {
	ctrl := &EventController{
		venues: services.NewStore[models.Venue](db, "venues", "name"),
	}
	ctrl.Store = services.NewStore[models.Event](db, "events", "event_date", "Venue")
	ctrl.Statuses = models.BookingStatuses
	ctrl.StatusOf = func(e *models.Event) string { return e.Status }
	ctrl.SearchFields = func(e *models.Event) []string {
		fields := []string{e.Name, e.Description}
		if e.Venue != nil {
			fields = append(fields, e.Venue.Name)
		}
		return fields
	}
	ctrl.Normalize = func(fields map[string]any) error {
		return normalizeDateFields(fields, "event_date")
	}
	return ctrl
}

func normalizeDateFields(fields map[string]any, keys ...string) error {
	for _, key := range keys {
		raw, present := fields[key]
		if !present {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			continue
		}
		t, err := validate.Date(s)
		if err != nil {
			return err
		}
		fields[key] = t
	}
	return nil
}

func (e *EventController) Create(c *gin.Context) {
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := validate.Date(payload.EventDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if payload.VenueID != nil {
		if _, err := e.venues.GetByID(*payload.VenueID); err != nil {
			respondStoreError(c, err)
			return
		}
	}

	event := models.Event{
		Name:        payload.Name,
		Description: payload.Description,
		EventDate:   datatypes.Date(date),
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		TicketPrice: payload.TicketPrice,
		Capacity:    payload.Capacity,
		IsPublic:    payload.IsPublic,
		Status:      models.BookingPending,
		ImageURL:    payload.ImageURL,
		VenueID:     payload.VenueID,
	}
	if err := e.Store.Create(&event); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

type EventBookingController struct {
	Resource[models.EventBooking]
	svc *services.EventBookingService
}

type eventBookingPayload struct {
	EventID    uint   `json:"event_id" validate:"required"`
	GuestName  string `json:"guest_name" validate:"required"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email"`
	GuestPhone string `json:"guest_phone"`
	NumTickets int    `json:"num_tickets" validate:"required,min=1"`
}

func NewEventBookingController(db *gorm.DB) *EventBookingController {
	svc := services.NewEventBookingService(db)

	ctrl := &EventBookingController{svc: svc}
	ctrl.Store = svc.Store
	ctrl.Statuses = models.BookingStatuses
	ctrl.StatusOf = func(b *models.EventBooking) string { return b.Status }
	ctrl.SearchFields = func(b *models.EventBooking) []string {
		fields := []string{b.GuestName, b.GuestEmail, b.GuestPhone}
		if b.Event != nil {
			fields = append(fields, b.Event.Name)
		}
		return fields
	}
	return ctrl
}

func (e *EventBookingController) Create(c *gin.Context) {
	var payload eventBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := e.svc.Create(services.EventBookingInput{
		EventID:    payload.EventID,
		GuestName:  payload.GuestName,
		GuestEmail: payload.GuestEmail,
		GuestPhone: payload.GuestPhone,
		NumTickets: payload.NumTickets,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}
