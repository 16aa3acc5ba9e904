package apihandlers

import (
	"net/http"

	"github.com/acai-prime/store-backend/pkg/order"
	"github.com/gin-gonic/gin"

	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	storeDBConn  *storeDB.StoreDBService
	orderService *order.Service
	debugMode    bool
}

func NewHTTPHandler(
	storeDBConn *storeDB.StoreDBService,
	orderService *order.Service,
	debugMode bool,
) *HttpEndpoints {
	return &HttpEndpoints{
		storeDBConn:  storeDBConn,
		orderService: orderService,
		debugMode:    debugMode,
	}
}
