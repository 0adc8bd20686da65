package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"byoma-backend/models"
	"byoma-backend/utils"
)

// Admin sections, in sidebar order.
const (
	SectionDashboard    = "dashboard"
	SectionRooms        = "rooms"
	SectionReservations = "reservations"
	SectionRestaurant   = "restaurant"
	SectionEvents       = "events"
	SectionGuests       = "guests"
	SectionMessages     = "messages"
	SectionSettings     = "settings"
)

var sectionOrder = []string{
	SectionDashboard,
	SectionRooms,
	SectionReservations,
	SectionRestaurant,
	SectionEvents,
	SectionGuests,
	SectionMessages,
	SectionSettings,
}

// CanAccess decides section visibility from the profile's role/department:
// dashboard and messages are always visible, reception covers rooms,
// reservations and guests, restaurant and events cover their own sections,
// settings is admin-only.
func CanAccess(role, department, section string) bool {
	if role == models.RoleAdmin {
		return true
	}
	switch section {
	case SectionDashboard, SectionMessages:
		return true
	case SectionRooms, SectionReservations, SectionGuests:
		return department == models.DepartmentReception
	case SectionRestaurant:
		return department == models.DepartmentRestaurant
	case SectionEvents:
		return department == models.DepartmentEvents
	default:
		return false
	}
}

// VisibleSections computes the sidebar for one profile, in display order.
func VisibleSections(role, department string) []string {
	visible := make([]string, 0, len(sectionOrder))
	for _, section := range sectionOrder {
		if CanAccess(role, department, section) {
			visible = append(visible, section)
		}
	}
	return visible
}

// RequireSection enforces the same table server-side, the way the hosted
// store's row policies did. Runs after SessionGuard.
func RequireSection(section string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CurrentProfile(c)
		if profile == nil {
			utils.JSONAuthError(c, "authentification requise")
			return
		}
		if !CanAccess(profile.Role, profile.DepartmentOrEmpty(), section) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "vous n'avez pas les permissions nécessaires",
			})
			return
		}
		c.Next()
	}
}
