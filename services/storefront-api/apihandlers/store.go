package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/acai-prime/store-backend/pkg/apihelpers/middlewares"
	"github.com/acai-prime/store-backend/pkg/order"
	"github.com/gin-gonic/gin"

	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

func (h *HttpEndpoints) AddStorefrontAPI(rg *gin.RouterGroup) {
	rg.GET("/products", h.getProducts)
	rg.GET("/toppings", h.getToppings)

	ordersGroup := rg.Group("/orders")
	{
		ordersGroup.POST("", middlewares.RequirePayload(), h.createOrder)
		ordersGroup.GET("/:id", h.getOrder)
	}

	rg.POST("/analytics/track", middlewares.RequirePayload(), h.trackAnalyticsEvent)

	seedGroup := rg.Group("/seed")
	{
		seedGroup.POST("/products", h.seedProducts)
		seedGroup.POST("/toppings", h.seedToppings)
	}
}

func (h *HttpEndpoints) getProducts(c *gin.Context) {
	products, err := h.storeDBConn.GetProducts()
	if err != nil {
		slog.Error("failed to fetch products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *HttpEndpoints) getToppings(c *gin.Context) {
	toppings, err := h.storeDBConn.GetToppings()
	if err != nil {
		slog.Error("failed to fetch toppings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching toppings"})
		return
	}
	c.JSON(http.StatusOK, toppings)
}

func (h *HttpEndpoints) createOrder(c *gin.Context) {
	var req order.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if order.IsValidationError(err) || errors.Is(err, order.ErrInvalidPaymentMethod) {
			slog.Warn("rejected order submission", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("failed to create order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating order"})
		return
	}

	if result.Replayed {
		slog.Info("duplicate order submission answered from existing order", slog.String("orderID", result.OrderID))
	}
	c.JSON(http.StatusOK, result)
}

func (h *HttpEndpoints) getOrder(c *gin.Context) {
	orderID := c.Param("id")

	details, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if storeDB.IsErrNoDocuments(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		slog.Error("failed to fetch order", slog.String("orderID", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching order"})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *HttpEndpoints) trackAnalyticsEvent(c *gin.Context) {
	var req struct {
		EventType string            `json:"eventType"`
		UserID    string            `json:"userId"`
		SessionID string            `json:"sessionId"`
		ProductID string            `json:"productId"`
		OrderID   string            `json:"orderId"`
		Metadata  map[string]string `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.EventType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventType is required"})
		return
	}

	_, err := h.storeDBConn.TrackAnalyticsEvent(storeDB.AnalyticsEvent{
		EventType: req.EventType,
		UserID:    req.UserID,
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Metadata:  req.Metadata,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to track analytics event", slog.String("eventType", req.EventType), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error tracking event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
