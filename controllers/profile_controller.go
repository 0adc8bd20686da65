package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"byoma-backend/models"
	"byoma-backend/services"
	"byoma-backend/utils"
	"byoma-backend/validate"
)

// ProfileController is the settings section: staff account management,
// admin only.
type ProfileController struct {
	Resource[models.Profile]
}

type profilePayload struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
}

func NewProfileController(db *gorm.DB) *ProfileController {
	ctrl := &ProfileController{}
	ctrl.Store = services.NewStore[models.Profile](db, "profiles", "full_name")
	ctrl.SearchFields = func(p *models.Profile) []string {
		return []string{p.FullName, p.Email}
	}
	return ctrl
}

// Create provisions a staff account. A department only makes sense for
// employees; admins see everything regardless.
func (p *ProfileController) Create(c *gin.Context) {
	var payload profilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidRole(payload.Role) {
		utils.JSONError(c, http.StatusBadRequest, "rôle invalide: "+payload.Role)
		return
	}
	var department *string
	if payload.Role == models.RoleEmployee && payload.Department != "" {
		if !models.ValidDepartment(payload.Department) {
			utils.JSONError(c, http.StatusBadRequest, "département invalide: "+payload.Department)
			return
		}
		department = &payload.Department
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "impossible de créer le compte")
		return
	}

	profile := models.Profile{
		Email:      strings.ToLower(strings.TrimSpace(payload.Email)),
		Password:   string(hash),
		FullName:   payload.FullName,
		Role:       payload.Role,
		Department: department,
	}
	if err := p.Store.Create(&profile); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Update edits name, role and department; a non-empty password is rehashed,
// anything else never touches the stored hash.
func (p *ProfileController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}

	if role, present := fields["role"]; present {
		s, _ := role.(string)
		if !models.ValidRole(s) {
			utils.JSONError(c, http.StatusBadRequest, "rôle invalide")
			return
		}
		if s == models.RoleAdmin {
			fields["department"] = nil
		}
	}
	if dept, present := fields["department"]; present && dept != nil {
		if s, _ := dept.(string); s != "" && !models.ValidDepartment(s) {
			utils.JSONError(c, http.StatusBadRequest, "département invalide")
			return
		}
	}
	if password, present := fields["password"]; present {
		delete(fields, "password")
		if s, _ := password.(string); s != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
			if err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "impossible de modifier le mot de passe")
				return
			}
			fields["password"] = string(hash)
		}
	}

	record, err := p.Store.UpdateByID(id, fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
