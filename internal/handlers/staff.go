package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/utils"
)

// StaffHandler handles staff account management. Accounts are
// provisioned by admins; there is no self-registration.
type StaffHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(db *gorm.DB, log *zap.Logger) *StaffHandler {
	return &StaffHandler{DB: db, Log: log}
}

// CreateStaffRequest represents the request body for creating a staff account.
type CreateStaffRequest struct {
	Name      string      `json:"name" binding:"required,min=2"`
	Role      models.Role `json:"role" binding:"required,oneof=admin doctor nurse"`
	AvatarURL string      `json:"avatarUrl"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=8"`
}

// CreateStaff creates a staff account with a bcrypt-hashed password.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	staff := models.Staff{
		Name:      req.Name,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := staff.SetPassword(req.Password); err != nil {
		h.Log.Error("failed to hash password", zap.Error(err))
		utils.InternalServerError(c, "Failed to create staff account")
		return
	}

	if err := h.DB.Create(&staff).Error; err != nil {
		h.Log.Error("failed to create staff", zap.String("email", req.Email), zap.Error(err))
		utils.InternalServerError(c, "Failed to create staff account")
		return
	}

	utils.Created(c, "Staff account created successfully", staff)
}

// GetStaff lists staff members, optionally filtered by role.
func (h *StaffHandler) GetStaff(c *gin.Context) {
	query := h.DB.Order("name asc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		h.Log.Error("failed to list staff", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch staff")
		return
	}

	utils.Success(c, "Staff fetched successfully", staff)
}

// UpdateStaffRequest represents the request body for editing a staff
// account. The password is only changed when a new one is supplied.
type UpdateStaffRequest struct {
	Name      string      `json:"name" binding:"required,min=2"`
	Role      models.Role `json:"role" binding:"required,oneof=admin doctor nurse"`
	AvatarURL string      `json:"avatarUrl"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"omitempty,min=8"`
}

// UpdateStaff edits a staff account.
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req UpdateStaffRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var staff models.Staff
	if err := h.DB.First(&staff, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Staff member not found")
		} else {
			h.Log.Error("failed to fetch staff", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	staff.Name = req.Name
	staff.Role = req.Role
	staff.AvatarURL = req.AvatarURL
	staff.Phone = req.Phone
	staff.Email = req.Email
	if req.Password != "" {
		if err := staff.SetPassword(req.Password); err != nil {
			h.Log.Error("failed to hash password", zap.Error(err))
			utils.InternalServerError(c, "Failed to update staff account")
			return
		}
	}

	if err := h.DB.Save(&staff).Error; err != nil {
		h.Log.Error("failed to update staff", zap.String("id", staff.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to update staff account")
		return
	}

	utils.Success(c, "Staff account updated successfully", staff)
}

// DeleteStaff removes a staff account. Admins cannot delete their own
// account, so the clinic always keeps at least one working admin login.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	staffID := c.Param("id")
	if requesterID, ok := middleware.GetStaffIDFromContext(c); ok && requesterID == staffID {
		utils.BadRequest(c, "You cannot delete your own account")
		return
	}

	result := h.DB.Delete(&models.Staff{}, "id = ?", staffID)
	if result.Error != nil {
		h.Log.Error("failed to delete staff", zap.String("id", staffID), zap.Error(result.Error))
		utils.InternalServerError(c, "Failed to delete staff account")
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Staff member not found")
		return
	}

	utils.Success(c, "Staff account deleted successfully", nil)
}
