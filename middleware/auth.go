package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/utils"
)

// ContextProfile is the gin context key holding the authenticated *models.Profile.
const ContextProfile = "profile"

// SessionGuard resolves the current session before any admin handler runs.
// A missing or invalid token, or a token whose identity has no provisioned
// profile row, ends the request with a redirect to the login entry point;
// no distinction between the failure modes is surfaced.
func SessionGuard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			utils.JSONAuthError(c, "authentification requise")
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.JSONAuthError(c, "authentification requise")
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.JSONAuthError(c, "session invalide ou expirée")
			return
		}

		var profile models.Profile
		if err := db.First(&profile, claims.ProfileID).Error; err != nil {
			// Identity exists but is no longer provisioned as staff.
			utils.JSONAuthError(c, "accès refusé")
			return
		}

		c.Set(ContextProfile, &profile)
		c.Next()
	}
}

// CurrentProfile returns the profile stored by SessionGuard.
func CurrentProfile(c *gin.Context) *models.Profile {
	v, ok := c.Get(ContextProfile)
	if !ok {
		return nil
	}
	profile, _ := v.(*models.Profile)
	return profile
}
