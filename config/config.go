package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig
	Storage StorageConfig
	Redis   RedisConfig
	Log     LogConfig
	Sandbox SandboxConfig
	JWT     JWTConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig selects where the credential pair is persisted.
// Driver is either "file" or "redis".
type StorageConfig struct {
	Driver          string
	CredentialsFile string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

type SandboxConfig struct {
	Port string
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("TOKEN_STORE", "file")
	viper.SetDefault("CREDENTIALS_FILE", ".credentials.json")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("SANDBOX_PORT", "8000")
	viper.SetDefault("JWT_SECRET", "sandbox-secret")

	// .env is optional; environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	timeout, err := time.ParseDuration(viper.GetString("HTTP_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: timeout,
		},
		Storage: StorageConfig{
			Driver:          viper.GetString("TOKEN_STORE"),
			CredentialsFile: viper.GetString("CREDENTIALS_FILE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Sandbox: SandboxConfig{
			Port: viper.GetString("SANDBOX_PORT"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
	}

	return config, nil
}
