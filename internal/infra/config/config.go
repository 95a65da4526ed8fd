package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	HTTPAddress string
	UploadDir   string

	AllowedOrigins   []string
	AllowCredentials bool

	RateLimit      int
	RateLimitBurst int

	LogLevel string
}

var requiredVars = []string{
	"DATABASE_URL",
	"JWT_SECRET",
	"ACCESS_TOKEN_TTL",
	"REFRESH_TOKEN_TTL",
	"HTTP_ADDRESS",
}

var optionalVars = []string{
	"UPLOAD_DIR",
	"ALLOWED_ORIGINS",
	"ALLOW_CREDENTIALS",
	"RATE_LIMIT",
	"RATE_LIMIT_BURST",
	"LOG_LEVEL",
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range append(append([]string{}, requiredVars...), optionalVars...) {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	for _, key := range requiredVars {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("%s is not set", key)
		}
	}

	accessTTL, err := time.ParseDuration(v.GetString("ACCESS_TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("bad ACCESS_TOKEN_TTL: %w", err)
	}
	refreshTTL, err := time.ParseDuration(v.GetString("REFRESH_TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("bad REFRESH_TOKEN_TTL: %w", err)
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}

	cfg := &Config{
		DatabaseURL:      v.GetString("DATABASE_URL"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AccessTokenTTL:   accessTTL,
		RefreshTokenTTL:  refreshTTL,
		HTTPAddress:      v.GetString("HTTP_ADDRESS"),
		UploadDir:        v.GetString("UPLOAD_DIR"),
		AllowCredentials: v.GetBool("ALLOW_CREDENTIALS"),
		RateLimit:        v.GetInt("RATE_LIMIT"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 50
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 100
	}

	// ALLOWED_ORIGINS comes as a JSON list so origins with commas or spaces
	// survive intact.
	if raw := v.GetString("ALLOWED_ORIGINS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.AllowedOrigins); err != nil {
			return nil, fmt.Errorf("bad ALLOWED_ORIGINS: %w", err)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}
