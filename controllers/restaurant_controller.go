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

type MenuCategoryController struct {
	Resource[models.MenuCategory]
}

func NewMenuCategoryController(db *gorm.DB) *MenuCategoryController {
	ctrl := &MenuCategoryController{}
	ctrl.Store = services.NewStore[models.MenuCategory](db, "menu_categories", "display_order")
	ctrl.SearchFields = func(cat *models.MenuCategory) []string {
		return []string{cat.Name, cat.Description}
	}
	return ctrl
}

type MenuItemController struct {
	Resource[models.MenuItem]
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	categories := services.NewStore[models.MenuCategory](db, "menu_categories", "display_order")

	ctrl := &MenuItemController{}
	ctrl.Store = services.NewStore[models.MenuItem](db, "menu_items", "name")
	ctrl.SearchFields = func(item *models.MenuItem) []string {
		return []string{item.Name, item.Description}
	}
	ctrl.BeforeCreate = func(item *models.MenuItem) error {
		if item.CategoryID != nil {
			if _, err := categories.GetByID(*item.CategoryID); err != nil {
				return err
			}
		}
		return nil
	}
	return ctrl
}

type DailySpecialController struct {
	Resource[models.DailySpecial]
}

type dailySpecialPayload struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,min=0"`
	Date        string  `json:"date" validate:"required"`
	IsActive    *bool   `json:"is_active"`
	ImageURL    string  `json:"image_url"`
}

func NewDailySpecialController(db *gorm.DB) *DailySpecialController {
	ctrl := &DailySpecialController{}
	ctrl.Store = services.NewStore[models.DailySpecial](db, "daily_specials", "date DESC")
	ctrl.SearchFields = func(s *models.DailySpecial) []string {
		return []string{s.Name, s.Description}
	}
	ctrl.Normalize = func(fields map[string]any) error {
		return normalizeDateFields(fields, "date")
	}
	return ctrl
}

func (d *DailySpecialController) Create(c *gin.Context) {
	var payload dailySpecialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := validate.Date(payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	special := models.DailySpecial{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Date:        datatypes.Date(date),
		IsActive:    payload.IsActive,
		ImageURL:    payload.ImageURL,
	}
	if err := d.Store.Create(&special); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, special)
}

type TableReservationController struct {
	Resource[models.TableReservation]
}

type tableReservationPayload struct {
	GuestName       string `json:"guest_name" validate:"required"`
	GuestEmail      string `json:"guest_email" validate:"omitempty,email"`
	GuestPhone      string `json:"guest_phone"`
	ReservationDate string `json:"reservation_date" validate:"required"`
	ReservationTime string `json:"reservation_time" validate:"required"`
	NumGuests       int    `json:"num_guests" validate:"required,min=1"`
	TableNumber     string `json:"table_number"`
	SpecialRequests string `json:"special_requests"`
}

func NewTableReservationController(db *gorm.DB) *TableReservationController {
	ctrl := &TableReservationController{}
	ctrl.Store = services.NewStore[models.TableReservation](db, "table_reservations", "reservation_date DESC")
	ctrl.Statuses = models.BookingStatuses
	ctrl.StatusOf = func(t *models.TableReservation) string { return t.Status }
	ctrl.SearchFields = func(t *models.TableReservation) []string {
		return []string{t.GuestName, t.GuestEmail, t.GuestPhone, t.TableNumber}
	}
	ctrl.Normalize = func(fields map[string]any) error {
		return normalizeDateFields(fields, "reservation_date")
	}
	return ctrl
}

// Create serves both the admin panel and the public restaurant page; the
// record always starts pending.
func (t *TableReservationController) Create(c *gin.Context) {
	var payload tableReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := validate.Date(payload.ReservationDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation := models.TableReservation{
		GuestName:       payload.GuestName,
		GuestEmail:      payload.GuestEmail,
		GuestPhone:      payload.GuestPhone,
		ReservationDate: datatypes.Date(date),
		ReservationTime: payload.ReservationTime,
		NumGuests:       payload.NumGuests,
		TableNumber:     payload.TableNumber,
		SpecialRequests: payload.SpecialRequests,
		Status:          models.BookingPending,
	}
	if err := t.Store.Create(&reservation); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
