package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
	"byoma-backend/utils"
	"byoma-backend/validate"
)

type ContactController struct {
	store *services.Store[models.ContactMessage]
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		store: services.NewStore[models.ContactMessage](db, "contact_messages", "created_at DESC"),
	}
}

type contactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Submit stores one contact message. The acknowledgement is local only; no
// mail is dispatched anywhere.
func (ct *ContactController) Submit(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	message := models.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Message: payload.Message,
	}
	if err := ct.store.Create(&message); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"message": "Votre message a été envoyé"})
}
