package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/middleware"
	"byoma-backend/models"
	"byoma-backend/services"
)

type MessageController struct {
	Resource[models.ContactMessage]
}

func NewMessageController(db *gorm.DB) *MessageController {
	ctrl := &MessageController{}
	ctrl.Store = services.NewStore[models.ContactMessage](db, "contact_messages", "created_at DESC")
	ctrl.SearchFields = func(m *models.ContactMessage) []string {
		return []string{m.Name, m.Email, m.Subject, m.Message}
	}
	return ctrl
}

// MarkRead flips is_read; opening a message in the inbox calls this.
func (m *MessageController) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := m.Store.UpdateByID(id, map[string]any{"is_read": true})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// MarkProcessed stamps the message with the handling staff member and time.
func (m *MessageController) MarkProcessed(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields := map[string]any{
		"is_read":      true,
		"processed_at": time.Now(),
	}
	if profile := middleware.CurrentProfile(c); profile != nil {
		fields["processed_by"] = profile.FullName
	}

	record, err := m.Store.UpdateByID(id, fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
