package apihandlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/acai-prime/store-backend/pkg/analytics"
	"github.com/acai-prime/store-backend/pkg/ratelimit"
	"github.com/gin-gonic/gin"

	adminUserDB "github.com/acai-prime/store-backend/pkg/db/admin-user"
	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	tokenSignKey    string
	tokenExpiresIn  time.Duration
	adminUserDBConn *adminUserDB.AdminUserDBService
	storeDBConn     *storeDB.StoreDBService
	aggregator      *analytics.Aggregator
	loginLimiter    *ratelimit.LoginLimiter
	debugMode       bool
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	adminUserDBConn *adminUserDB.AdminUserDBService,
	storeDBConn *storeDB.StoreDBService,
	aggregator *analytics.Aggregator,
	loginLimiter *ratelimit.LoginLimiter,
	debugMode bool,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:    tokenSignKey,
		tokenExpiresIn:  tokenExpiresIn,
		adminUserDBConn: adminUserDBConn,
		storeDBConn:     storeDBConn,
		aggregator:      aggregator,
		loginLimiter:    loginLimiter,
		debugMode:       debugMode,
	}
}

func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}
