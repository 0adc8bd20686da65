package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
)

// PublicController serves the read-only data the marketing site renders:
// residences, restaurant menu and upcoming public events.
type PublicController struct {
	roomTypes *services.Store[models.RoomType]
	specials  *services.Store[models.DailySpecial]
	events    *services.Store[models.Event]
	db        *gorm.DB
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{
		roomTypes: services.NewStore[models.RoomType](db, "room_types", "base_price"),
		specials:  services.NewStore[models.DailySpecial](db, "daily_specials", "date"),
		events:    services.NewStore[models.Event](db, "events", "event_date", "Venue"),
		db:        db,
	}
}

func (p *PublicController) RoomTypes(c *gin.Context) {
	types, err := p.roomTypes.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// Menu returns active categories with their available items, plus today's
// active specials.
func (p *PublicController) Menu(c *gin.Context) {
	var categories []models.MenuCategory
	err := p.db.
		Preload("Items", "is_available = ?", true).
		Where("is_active = ?", true).
		Order("display_order").
		Find(&categories).Error
	if err != nil {
		respondStoreError(c, &services.StoreError{Op: "menu.list", Message: err.Error(), Err: err})
		return
	}

	today := time.Now().Format("2006-01-02")
	specials, err := p.specials.List(
		services.Where("date = ?", today),
		services.Where("is_active = ?", true),
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"specials":   specials,
	})
}

// Events lists upcoming public events only.
func (p *PublicController) Events(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	events, err := p.events.List(
		services.Where("is_public = ?", true),
		services.Where("event_date >= ?", today),
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
