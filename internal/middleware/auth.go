package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set staff information in context for downstream handlers
		c.Set("staffID", claims.StaffID)
		c.Set("staffRole", claims.Role)

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware for role-based authorization.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffRole, exists := c.Get("staffRole")
		if !exists {
			utils.InternalServerError(c, "Staff role not found in context. AuthMiddleware might be missing.")
			c.Abort()
			return
		}

		role, ok := staffRole.(models.Role)
		if !ok {
			utils.InternalServerError(c, "Staff role in context is not of expected type.")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}

		utils.Forbidden(c, "You do not have permission to access this resource.")
		c.Abort()
	}
}

// GetStaffIDFromContext returns the authenticated staff member's ID.
func GetStaffIDFromContext(c *gin.Context) (string, bool) {
	staffID, exists := c.Get("staffID")
	if !exists {
		return "", false
	}
	idStr, ok := staffID.(string)
	return idStr, ok
}

// GetStaffRoleFromContext returns the authenticated staff member's role.
func GetStaffRoleFromContext(c *gin.Context) (models.Role, bool) {
	staffRole, exists := c.Get("staffRole")
	if !exists {
		return "", false
	}
	role, ok := staffRole.(models.Role)
	return role, ok
}
