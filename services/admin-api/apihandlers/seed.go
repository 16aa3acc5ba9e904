package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/acai-prime/store-backend/pkg/admin-user/pwhash"
	"github.com/gin-gonic/gin"

	adminUserDB "github.com/acai-prime/store-backend/pkg/db/admin-user"
)

const (
	seedAdminEmail    = "admin@acaiprime.com"
	seedAdminPassword = "admin123"
)

// seedAdmin creates the default back office account. Only available in debug
// mode, the password must be changed before going live.
func (h *HttpEndpoints) seedAdmin(c *gin.Context) {
	if !h.debugMode {
		c.JSON(http.StatusForbidden, gin.H{"error": "seeding is only available in debug mode"})
		return
	}

	if _, err := h.adminUserDBConn.GetAdminUserByEmail(seedAdminEmail); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "admin already exists"})
		return
	}

	passwordHash, err := pwhash.HashPassword(seedAdminPassword)
	if err != nil {
		slog.Error("failed to hash seed admin password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating admin"})
		return
	}

	admin, err := h.adminUserDBConn.CreateAdminUser(adminUserDB.AdminUser{
		Email:        seedAdminEmail,
		PasswordHash: passwordHash,
		Name:         "Administrador",
		Role:         "admin",
		CreatedAt:    time.Now(),
	})
	if err != nil {
		slog.Error("failed to create seed admin", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating admin"})
		return
	}

	slog.Info("seeded admin user", slog.String("email", admin.Email))
	c.JSON(http.StatusOK, gin.H{
		"message": "admin created successfully, change the password for production use",
		"admin": gin.H{
			"email": admin.Email,
			"name":  admin.Name,
			"role":  admin.Role,
		},
	})
}
