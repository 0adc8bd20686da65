package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
	"byoma-backend/utils"
)

type RoomTypeController struct {
	Resource[models.RoomType]
	svc *services.RoomTypeService
}

func NewRoomTypeController(db *gorm.DB) *RoomTypeController {
	svc := services.NewRoomTypeService(db)

	ctrl := &RoomTypeController{svc: svc}
	ctrl.Store = svc.Store
	ctrl.SearchFields = func(t *models.RoomType) []string {
		return []string{t.Name, t.Description}
	}
	return ctrl
}

// Delete goes through the service so the dependent-room check runs before
// anything is issued to the store.
func (r *RoomTypeController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := r.svc.Delete(id); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
