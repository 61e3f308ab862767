package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	LogLevel          string
	JWTSecret         string
	SessionSecret     string
	OriginURL         string
	ProfileServiceURL string
	OrdersServiceURL  string
	ServiceTimeout    time.Duration
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	ViewStateTTL      time.Duration
	TimeZone          string
	UploadDir         string
	MaxUploadSize     int64
	CloudinaryURL     string
	CloudinaryName    string
	CloudinaryKey     string
	CloudinarySecret  string
	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPassword      string
	SMTPFrom          string
	SupportEmail      string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		SessionSecret:     getEnv("SESSION_SECRET", "customer-portal-session"),
		OriginURL:         getEnv("ORIGIN_URL", ""),
		ProfileServiceURL: getEnv("PROFILE_SERVICE_URL", "http://localhost:8081"),
		OrdersServiceURL:  getEnv("ORDERS_SERVICE_URL", "http://localhost:8081"),
		ServiceTimeout:    getDuration("SERVICE_TIMEOUT", 10*time.Second),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ViewStateTTL:      getDuration("VIEW_STATE_TTL", 30*time.Minute),
		TimeZone:          getEnv("APP_TIMEZONE", "Local"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:     getInt64("MAX_UPLOAD_SIZE", 5242880),
		CloudinaryURL:     getEnv("CLOUDINARY_URL", ""),
		CloudinaryName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryKey:     getEnv("CLOUDINARY_API_KEY", ""),
		CloudinarySecret:  getEnv("CLOUDINARY_API_SECRET", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          int(getInt64("SMTP_PORT", 587)),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPassword:      getEnv("SMTP_PASS", ""),
		SMTPFrom:          getEnv("SMTP_FROM", ""),
		SupportEmail:      getEnv("SUPPORT_EMAIL", ""),
	}

	return AppConfig
}

// Location resolves APP_TIMEZONE. Unknown names fall back to time.Local.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("Warning: unknown APP_TIMEZONE %q, using local time", c.TimeZone)
		return time.Local
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	n, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || n == 0 {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
