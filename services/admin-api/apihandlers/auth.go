package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/acai-prime/store-backend/pkg/admin-user/pwhash"
	"github.com/acai-prime/store-backend/pkg/apihelpers/middlewares"
	"github.com/gin-gonic/gin"

	jwthandling "github.com/acai-prime/store-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddAdminAPI(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")

	authGroup := adminGroup.Group("/auth")
	{
		authGroup.POST("/login", middlewares.RequirePayload(), middlewares.LoginRateLimit(h.loginLimiter), h.login)
		authGroup.POST("/logout", middlewares.GetAndValidateAdminUserJWT(h.tokenSignKey), h.logout)
	}

	adminGroup.POST("/seed-admin", h.seedAdmin)

	protectedGroup := adminGroup.Group("")
	protectedGroup.Use(middlewares.GetAndValidateAdminUserJWT(h.tokenSignKey))
	{
		protectedGroup.GET("/me", h.getMe)
		protectedGroup.GET("/analytics", h.getAnalytics)

		productsGroup := protectedGroup.Group("/products")
		{
			productsGroup.GET("", h.getAdminProducts)
			productsGroup.POST("", middlewares.RequirePayload(), h.createProduct)
			productsGroup.PUT("/:id", middlewares.RequirePayload(), h.updateProduct)
			productsGroup.DELETE("/:id", h.deleteProduct)
		}

		reviewsGroup := protectedGroup.Group("/reviews")
		{
			reviewsGroup.GET("", h.getReviews)
			reviewsGroup.POST("", middlewares.RequirePayload(), h.createReview)
			reviewsGroup.PUT("/:id", middlewares.RequirePayload(), h.updateReview)
			reviewsGroup.DELETE("/:id", h.deleteReview)
		}

		protectedGroup.GET("/orders", h.getAdminOrders)
		protectedGroup.GET("/orders/:id", h.getAdminOrder)
		protectedGroup.GET("/transactions", h.getTransactions)
	}
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	admin, err := h.adminUserDBConn.GetAdminUserByEmail(req.Email)
	if err != nil {
		slog.Warn("login attempt with unknown email", slog.String("email", req.Email), slog.String("error", err.Error()))
		randomWait(2, 5)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(admin.PasswordHash, req.Password)
	if err != nil || !match {
		slog.Warn("login attempt with wrong password", slog.String("email", req.Email))
		randomWait(2, 5)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := jwthandling.GenerateNewAdminUserToken(
		h.tokenExpiresIn,
		admin.ID.Hex(),
		admin.Email,
		admin.Role,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.adminUserDBConn.UpdateLastLoginAt(admin.ID.Hex()); err != nil {
		slog.Error("failed to update last login timestamp", slog.String("error", err.Error()))
	}

	// Successful login clears the attempt budget for this client
	h.loginLimiter.Reset(c.ClientIP())

	slog.Info("admin logged in", slog.String("adminID", admin.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID.Hex(),
			"email": admin.Email,
			"name":  admin.Name,
			"role":  admin.Role,
		},
	})
}

func (h *HttpEndpoints) logout(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AdminUserClaims)

	slog.Info("admin logged out", slog.String("adminID", token.ID))
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

func (h *HttpEndpoints) getMe(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AdminUserClaims)

	admin, err := h.adminUserDBConn.GetAdminUser(token.ID)
	if err != nil {
		slog.Error("failed to fetch admin user", slog.String("adminID", token.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    admin.ID.Hex(),
		"email": admin.Email,
		"name":  admin.Name,
		"role":  admin.Role,
	})
}
