package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/acai-prime/store-backend/pkg/analytics"
	"github.com/acai-prime/store-backend/pkg/apihelpers"
	"github.com/acai-prime/store-backend/pkg/apihelpers/middlewares"
	"github.com/acai-prime/store-backend/pkg/db"
	"github.com/acai-prime/store-backend/pkg/ratelimit"
	"github.com/acai-prime/store-backend/services/admin-api/apihandlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminUserDB "github.com/acai-prime/store-backend/pkg/db/admin-user"
	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

var conf AdminApiConfig

func main() {
	storeDBService, err := storeDB.NewStoreDBService(db.DBConfigFromYamlObj(conf.DBConfigs.StoreDB))
	if err != nil {
		slog.Error("Error connecting to Store DB", slog.String("error", err.Error()))
		return
	}
	storeDBService.CreateDefaultIndexes()

	adminUserDBService, err := adminUserDB.NewAdminUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.AdminUserDB))
	if err != nil {
		slog.Error("Error connecting to Admin User DB", slog.String("error", err.Error()))
		return
	}
	adminUserDBService.CreateDefaultIndexes()

	loginLimiter := ratelimit.NewLoginLimiter(conf.AdminUserConfig.LoginRateLimit)
	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()
	go loginLimiter.Start(limiterCtx)

	aggregator := analytics.NewAggregator(storeDBService)

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middlewares.CollectMetrics("admin-api"))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.AdminUserConfig.JWTConfig.SignKey,
		conf.AdminUserConfig.JWTConfig.ExpiresIn,
		adminUserDBService,
		storeDBService,
		aggregator,
		loginLimiter,
		conf.GinConfig.DebugMode,
	)
	v1APIHandlers.AddAdminAPI(v1Root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "admin-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Admin API on port " + conf.GinConfig.Port)
	if err := router.Run(":" + conf.GinConfig.Port); err != nil {
		slog.Error("Exited Admin API", slog.String("error", err.Error()))
		return
	}
}
