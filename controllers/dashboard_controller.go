package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"byoma-backend/middleware"
	"byoma-backend/services"
	"byoma-backend/utils"
)

type DashboardController struct {
	stats *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{stats: svc}
}

func (d *DashboardController) GetStats(c *gin.Context) {
	stats, err := d.stats.Stats()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSections returns the sidebar entries visible to the current profile.
// This drives navigation only; each route group is still enforced
// separately.
func (d *DashboardController) GetSections(c *gin.Context) {
	profile := middleware.CurrentProfile(c)
	if profile == nil {
		utils.JSONAuthError(c, "authentification requise")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sections": middleware.VisibleSections(profile.Role, profile.DepartmentOrEmpty()),
	})
}
