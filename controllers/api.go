package controllers

import (
	"gorm.io/gorm"

	"byoma-backend/services"
)

// API bundles every controller so the router receives a single instance.
type API struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Public    *PublicController
	Contact   *ContactController

	RoomTypes    *RoomTypeController
	Rooms        *RoomController
	Guests       *GuestController
	Reservations *ReservationController

	MenuCategories    *MenuCategoryController
	MenuItems         *MenuItemController
	DailySpecials     *DailySpecialController
	TableReservations *TableReservationController

	Venues        *VenueController
	Events        *EventController
	EventBookings *EventBookingController

	Messages *MessageController
	Profiles *ProfileController
}

func New(db *gorm.DB) *API {
	return &API{
		Auth:      NewAuthController(db),
		Dashboard: NewDashboardController(services.NewDashboardService(db)),
		Public:    NewPublicController(db),
		Contact:   NewContactController(db),

		RoomTypes:    NewRoomTypeController(db),
		Rooms:        NewRoomController(db),
		Guests:       NewGuestController(db),
		Reservations: NewReservationController(db),

		MenuCategories:    NewMenuCategoryController(db),
		MenuItems:         NewMenuItemController(db),
		DailySpecials:     NewDailySpecialController(db),
		TableReservations: NewTableReservationController(db),

		Venues:        NewVenueController(db),
		Events:        NewEventController(db),
		EventBookings: NewEventBookingController(db),

		Messages: NewMessageController(db),
		Profiles: NewProfileController(db),
	}
}
