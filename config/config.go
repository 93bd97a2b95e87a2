package config

import (
	"errors"
	"log"
	"time"

	"dhara/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Proxies whose X-Forwarded-For is trusted for client IPs; empty trusts none.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Calendar grid defaults; requests may override them.
	BusinessHourStart int           `mapstructure:"BUSINESS_HOUR_START"`
	BusinessHourEnd   int           `mapstructure:"BUSINESS_HOUR_END"`
	WeekStartsOn      int           `mapstructure:"WEEK_STARTS_ON"`
	CalendarCacheTTL  time.Duration `mapstructure:"CALENDAR_CACHE_TTL"`

	// Cron spec for the occupancy snapshot job; empty disables it.
	OccupancySnapshotSchedule string `mapstructure:"OCCUPANCY_SNAPSHOT_SCHEDULE"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "dhara")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("BUSINESS_HOUR_START", 7)
	viper.SetDefault("BUSINESS_HOUR_END", 21)
	viper.SetDefault("WEEK_STARTS_ON", 1)
	viper.SetDefault("CALENDAR_CACHE_TTL", "5m")
	viper.SetDefault("OCCUPANCY_SNAPSHOT_SCHEDULE", "@every 15m")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := Validate(AppConfig); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate rejects configurations the server must not start with.
func Validate(cfg Config) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if cfg.BusinessHourStart < 0 || cfg.BusinessHourEnd > 24 || cfg.BusinessHourStart >= cfg.BusinessHourEnd {
		return errors.New("BUSINESS_HOUR_START must be before BUSINESS_HOUR_END within 0-24")
	}
	if cfg.WeekStartsOn < 0 || cfg.WeekStartsOn > 6 {
		return errors.New("WEEK_STARTS_ON must be 0 (Sunday) to 6 (Saturday)")
	}
	return nil
}

// CalendarDefaults returns the configured grid options.
func CalendarDefaults() models.CalendarOptions {
	return models.CalendarOptions{
		BusinessHourStart: AppConfig.BusinessHourStart,
		BusinessHourEnd:   AppConfig.BusinessHourEnd,
		WeekStartsOn:      time.Weekday(AppConfig.WeekStartsOn),
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
