package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"byoma-backend/middleware"
	"byoma-backend/models"
	"byoma-backend/utils"
	"byoma-backend/validate"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupPayload struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	var profile models.Profile
	if err := a.db.Where("email = ?", email).First(&profile).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "email ou mot de passe incorrect")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "email ou mot de passe incorrect")
		return
	}

	token, err := utils.CreateToken(profile.ID, profile.Role, profile.DepartmentOrEmpty())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "impossible de créer la session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"profile":  profile,
		"sections": middleware.VisibleSections(profile.Role, profile.DepartmentOrEmpty()),
	})
}

// Signup bootstraps a staff account with the admin role, the same self-serve
// path the login screen offers.
func (a *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "impossible de créer le compte")
		return
	}

	profile := models.Profile{
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Password: string(hash),
		FullName: payload.FullName,
		Role:     models.RoleAdmin,
	}
	if err := a.db.Create(&profile).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "un compte existe déjà pour cet email")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

func (a *AuthController) Me(c *gin.Context) {
	profile := middleware.CurrentProfile(c)
	if profile == nil {
		utils.JSONAuthError(c, "authentification requise")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"sections": middleware.VisibleSections(profile.Role, profile.DepartmentOrEmpty()),
	})
}
