package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB     int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReservationDB int    `mapstructure:"REDIS_RESERVATION_DB"`
	RedisDedupeDB      int    `mapstructure:"REDIS_DEDUPE_DB"`
	RedisQueueDB       int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking engine tuning.
	SlotHorizonDays   int   `mapstructure:"SLOT_HORIZON_DAYS"`
	SlotHours         []int `mapstructure:"SLOT_HOURS"`
	SlotOfferCount    int   `mapstructure:"SLOT_OFFER_COUNT"`
	SessionTTLMinutes int   `mapstructure:"SESSION_TTL_MINUTES"`
	DedupeTTLSeconds  int   `mapstructure:"DEDUPE_TTL_SECONDS"`
	StoreTimeoutMS    int   `mapstructure:"STORE_TIMEOUT_MS"`

	// AI fallback router.
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	AITimeoutSeconds int    `mapstructure:"AI_TIMEOUT_SECONDS"`

	// Inbound channel (webhook) signature verification.
	ChannelAuthToken string `mapstructure:"CHANNEL_AUTH_TOKEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_RESERVATION_DB", 1)
	viper.SetDefault("REDIS_DEDUPE_DB", 2)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "turnero")
	viper.SetDefault("SLOT_HORIZON_DAYS", 3)
	viper.SetDefault("SLOT_HOURS", []int{10, 11, 14, 16})
	viper.SetDefault("SLOT_OFFER_COUNT", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("DEDUPE_TTL_SECONDS", 120)
	viper.SetDefault("STORE_TIMEOUT_MS", 2000)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 8)
	viper.SetDefault("CHANNEL_AUTH_TOKEN", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
