package models

// StatusSet is the closed enumeration of status labels an entity accepts,
// together with the display label and badge color for each value. Any value
// in the set may be written over any other; there is no transition table.
type StatusSet struct {
	Column string
	Values []string
	Labels map[string]string
	Colors map[string]string
}

func (s *StatusSet) Valid(v string) bool {
	for _, value := range s.Values {
		if value == v {
			return true
		}
	}
	return false
}

const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationCheckedIn  = "checked_in"
	ReservationCheckedOut = "checked_out"
	ReservationCancelled  = "cancelled"

	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
	RoomCleaning    = "cleaning"

	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

var ReservationStatuses = &StatusSet{
	Column: "status",
	Values: []string{ReservationPending, ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled},
	Labels: map[string]string{
		ReservationPending:    "En attente",
		ReservationConfirmed:  "Confirmée",
		ReservationCheckedIn:  "Check-in",
		ReservationCheckedOut: "Check-out",
		ReservationCancelled:  "Annulée",
	},
	Colors: map[string]string{
		ReservationPending:    "bg-yellow-100 text-yellow-800",
		ReservationConfirmed:  "bg-blue-100 text-blue-800",
		ReservationCheckedIn:  "bg-green-100 text-green-800",
		ReservationCheckedOut: "bg-gray-100 text-gray-800",
		ReservationCancelled:  "bg-red-100 text-red-800",
	},
}

var RoomStatuses = &StatusSet{
	Column: "status",
	Values: []string{RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning},
	Labels: map[string]string{
		RoomAvailable:   "Disponible",
		RoomOccupied:    "Occupée",
		RoomMaintenance: "Maintenance",
		RoomCleaning:    "Nettoyage",
	},
	Colors: map[string]string{
		RoomAvailable:   "bg-green-500/10 text-green-600 border-green-500/20",
		RoomOccupied:    "bg-red-500/10 text-red-600 border-red-500/20",
		RoomMaintenance: "bg-yellow-500/10 text-yellow-600 border-yellow-500/20",
		RoomCleaning:    "bg-blue-500/10 text-blue-600 border-blue-500/20",
	},
}

// BookingStatuses covers events, event bookings and table reservations.
var BookingStatuses = &StatusSet{
	Column: "status",
	Values: []string{BookingPending, BookingConfirmed, BookingCancelled},
	Labels: map[string]string{
		BookingPending:   "En attente",
		BookingConfirmed: "Confirmé",
		BookingCancelled: "Annulé",
	},
	Colors: map[string]string{
		BookingPending:   "bg-yellow-100 text-yellow-800",
		BookingConfirmed: "bg-green-100 text-green-800",
		BookingCancelled: "bg-red-100 text-red-800",
	},
}

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	DepartmentReception  = "reception"
	DepartmentRestaurant = "restaurant"
	DepartmentEvents     = "events"
)

var Roles = []string{RoleAdmin, RoleEmployee}

var Departments = []string{DepartmentReception, DepartmentRestaurant, DepartmentEvents}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}
