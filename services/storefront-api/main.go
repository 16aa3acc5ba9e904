package main

import (
	"log/slog"
	"time"

	"github.com/acai-prime/store-backend/pkg/apihelpers"
	"github.com/acai-prime/store-backend/pkg/apihelpers/middlewares"
	"github.com/acai-prime/store-backend/pkg/db"
	"github.com/acai-prime/store-backend/pkg/order"
	"github.com/acai-prime/store-backend/pkg/payment"
	"github.com/acai-prime/store-backend/services/storefront-api/apihandlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

var conf StorefrontApiConfig

func main() {
	storeDBService, err := storeDB.NewStoreDBService(db.DBConfigFromYamlObj(conf.DBConfigs.StoreDB))
	if err != nil {
		slog.Error("Error connecting to Store DB", slog.String("error", err.Error()))
		return
	}
	storeDBService.CreateDefaultIndexes()

	var gateway *payment.GatewayClient
	if conf.PaymentConfigs.Gateway.AccessToken != "" {
		gateway = payment.NewGatewayClient(conf.PaymentConfigs.Gateway)
	} else {
		slog.Warn("payment gateway access token not set, PIX payloads will be synthesized locally")
	}

	orderService := order.NewService(storeDBService, gateway, conf.PaymentConfigs.Merchant)

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
	router.Use(middlewares.CollectMetrics("storefront-api"))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		storeDBService,
		orderService,
		conf.GinConfig.DebugMode,
	)
	v1APIHandlers.AddStorefrontAPI(v1Root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "storefront-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Storefront API on port " + conf.GinConfig.Port)
	if err := router.Run(":" + conf.GinConfig.Port); err != nil {
		slog.Error("Exited Storefront API", slog.String("error", err.Error()))
		return
	}
}
