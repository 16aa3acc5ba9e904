package main

import (
	"os"

	"github.com/acai-prime/store-backend/pkg/db"
	"github.com/acai-prime/store-backend/pkg/payment"
	"github.com/acai-prime/store-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_STORE_DB_USERNAME = "STORE_DB_USERNAME"
	ENV_STORE_DB_PASSWORD = "STORE_DB_PASSWORD"

	ENV_PAYMENT_GATEWAY_ACCESS_TOKEN = "PAYMENT_GATEWAY_ACCESS_TOKEN"
)

type StorefrontApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// DB configs
	DBConfigs struct {
		StoreDB db.DBConfigYaml `json:"store_db" yaml:"store_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Payment configs
	PaymentConfigs struct {
		Gateway  payment.GatewayConfig  `json:"gateway" yaml:"gateway"`
		Merchant payment.MerchantConfig `json:"merchant" yaml:"merchant"`
	} `json:"payment_configs" yaml:"payment_configs"`
}

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_STORE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.StoreDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_STORE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.StoreDB.Password = dbPassword
	}

	if accessToken := os.Getenv(ENV_PAYMENT_GATEWAY_ACCESS_TOKEN); accessToken != "" {
		conf.PaymentConfigs.Gateway.AccessToken = accessToken
	}
}
