package main

import (
	"os"
	"time"

	"github.com/acai-prime/store-backend/pkg/admin-user/pwhash"
	"github.com/acai-prime/store-backend/pkg/db"
	"github.com/acai-prime/store-backend/pkg/ratelimit"
	"github.com/acai-prime/store-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_STORE_DB_USERNAME      = "STORE_DB_USERNAME"
	ENV_STORE_DB_PASSWORD      = "STORE_DB_PASSWORD"
	ENV_ADMIN_USER_DB_USERNAME = "ADMIN_USER_DB_USERNAME"
	ENV_ADMIN_USER_DB_PASSWORD = "ADMIN_USER_DB_PASSWORD"

	ENV_ADMIN_USER_JWT_SIGN_KEY   = "ADMIN_USER_JWT_SIGN_KEY"
	ENV_ADMIN_USER_JWT_EXPIRES_IN = "ADMIN_USER_JWT_EXPIRES_IN"
)

type AdminApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// admin user management configs
	AdminUserConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		JWTConfig struct {
			SignKey   string        `json:"sign_key" yaml:"sign_key"`
			ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
		} `json:"jwt_config" yaml:"jwt_config"`
		LoginRateLimit ratelimit.Config `json:"login_rate_limit" yaml:"login_rate_limit"`
	} `json:"admin_user_config" yaml:"admin_user_config"`

	// DB configs
	DBConfigs struct {
		StoreDB     db.DBConfigYaml `json:"store_db" yaml:"store_db"`
		AdminUserDB db.DBConfigYaml `json:"admin_user_db" yaml:"admin_user_db"`
	} `json:"db_configs" yaml:"db_configs"`
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

	// init argon2
	pwhash.InitArgonParams(
		conf.AdminUserConfig.PWHashing.Argon2Memory,
		conf.AdminUserConfig.PWHashing.Argon2Iterations,
		conf.AdminUserConfig.PWHashing.Argon2Parallelism,
	)
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_STORE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.StoreDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_STORE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.StoreDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_ADMIN_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AdminUserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_ADMIN_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AdminUserDB.Password = dbPassword
	}

	if jwtSignKey := os.Getenv(ENV_ADMIN_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.AdminUserConfig.JWTConfig.SignKey = jwtSignKey
	}

	if expiresIn := os.Getenv(ENV_ADMIN_USER_JWT_EXPIRES_IN); expiresIn != "" {
		d, err := utils.ParseDurationString(expiresIn)
		if err != nil {
			panic(err)
		}
		conf.AdminUserConfig.JWTConfig.ExpiresIn = d
	}
}
