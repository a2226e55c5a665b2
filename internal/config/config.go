package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LegacyJWTSecret is the signing secret the service has always shipped with.
// It stays the default so existing tokens keep verifying; set JWT_SECRET or
// JWT_SECRET_ARN in any real deployment.
const LegacyJWTSecret = "your_secret_key"

// Config holds the application configuration.
type Config struct {
	ServerPort int `mapstructure:"port"`

	DatabaseEndpoint   string        `mapstructure:"database_endpoint"`
	DatabaseUser       string        `mapstructure:"database_user"`
	DatabasePassword   string        `mapstructure:"database_password"`
	DatabasePort       int           `mapstructure:"database_port"`
	DatabaseName       string        `mapstructure:"database_name"`
	DatabaseCollection string        `mapstructure:"database_collection"`
	DatabaseTLSCAFile  string        `mapstructure:"database_tls_ca_file"`
	ConnectTimeout     time.Duration `mapstructure:"database_connect_timeout"`
	OperationTimeout   time.Duration `mapstructure:"database_operation_timeout"`
	MaxPoolSize        uint64        `mapstructure:"database_max_pool_size"`

	StoreDriver string `mapstructure:"store_driver"` // "mongo" or "sqlite"
	SQLitePath  string `mapstructure:"sqlite_path"`

	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTSecretARN string        `mapstructure:"jwt_secret_arn"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

var defaults = map[string]any{
	"port":                       8080,
	"database_endpoint":          "",
	"database_user":              "",
	"database_password":          "",
	"database_port":              27017,
	"database_name":              "user_db",
	"database_collection":        "users",
	"database_tls_ca_file":       "",
	"database_connect_timeout":   "10s",
	"database_operation_timeout": "5s",
	"database_max_pool_size":     10,
	"store_driver":               "mongo",
	"sqlite_path":                "./users.db",
	"jwt_secret":                 LegacyJWTSecret,
	"jwt_secret_arn":             "",
	"token_ttl":                  "30m",
	"log_level":                  "info",
	"log_format":                 "console",
	"cors_allowed_origins":       "*",
}

// Load loads configuration from environment variables or sets defaults.
// envFiles are loaded into the environment first; missing files are ignored.
// Missing variables never fail the load.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins splits CORSAllowedOrigins into a list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
