package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/utils"
)

// AuthHandler handles staff login and profile lookup.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg, Log: log}
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Staff        models.Staff `json:"staff"`
}

// Login checks the staff member's password and issues a JWT pair. The
// same message is returned for an unknown email and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var staff models.Staff
	if err := h.DB.First(&staff, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			h.Log.Error("failed to fetch staff for login", zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	if !staff.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&staff, h.Cfg)
	if err != nil {
		h.Log.Error("failed to generate tokens", zap.String("staffId", staff.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to generate tokens")
		return
	}

	utils.Success(c, "Login successful", loginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Staff:        staff,
	})
}

// GetProfile returns the authenticated staff member's own record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Staff ID not found in token")
		return
	}

	var staff models.Staff
	if err := h.DB.First(&staff, "id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Staff member not found")
		} else {
			h.Log.Error("failed to fetch profile", zap.String("id", staffID), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	utils.Success(c, "Profile fetched successfully", staff)
}
