package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/middleware"
	"byoma-backend/models"
	"byoma-backend/services"
	"byoma-backend/utils"
	"byoma-backend/validate"
)

type ReservationController struct {
	Resource[models.Reservation]
	svc *services.ReservationService
}

type reservationPayload struct {
	GuestID         uint   `json:"guest_id" validate:"required"`
	RoomTypeID      uint   `json:"room_type_id" validate:"required"`
	CheckInDate     string `json:"check_in_date" validate:"required"`
	CheckOutDate    string `json:"check_out_date" validate:"required"`
	NumGuests       int    `json:"num_guests" validate:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

func NewReservationController(db *gorm.DB) *ReservationController {
	svc := services.NewReservationService(db)

	ctrl := &ReservationController{svc: svc}
	ctrl.Store = svc.Store
	ctrl.Statuses = models.ReservationStatuses
	ctrl.StatusOf = func(r *models.Reservation) string { return r.Status }
	ctrl.SearchFields = func(r *models.Reservation) []string {
		fields := []string{r.ReservationNumber}
		if r.Guest != nil {
			fields = append(fields, r.Guest.FirstName, r.Guest.LastName)
		}
		return fields
	}
	// Dates arrive as YYYY-MM-DD; hand them to the store as time values.
	// total_price is untouched on edits, the price stays whatever creation
	// computed.
	ctrl.Normalize = func(fields map[string]any) error {
		for _, key := range []string{"check_in_date", "check_out_date"} {
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
	return ctrl
}

// Create computes the total price once (nights × the room type's base price)
// and generates the reservation number; the record always starts pending.
func (r *ReservationController) Create(c *gin.Context) {
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := validate.Date(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := validate.Date(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := services.ReservationInput{
		GuestID:         payload.GuestID,
		RoomTypeID:      payload.RoomTypeID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       payload.NumGuests,
		SpecialRequests: payload.SpecialRequests,
	}
	if profile := middleware.CurrentProfile(c); profile != nil {
		input.CreatedBy = &profile.ID
	}

	reservation, err := r.svc.Create(input)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
