package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	OdooURL string
	OdooDB  string

	SessionCookieName string
	SessionHashKey    string
	SessionBlockKey   string

	SupabaseURL        string
	SupabaseServiceKey string

	WebhookURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket string
	S3Region string

	Production bool
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		OdooURL:            getEnv("ODOO_URL", "https://erp.adryze.com"),
		OdooDB:             getEnv("ODOO_DB", ""),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "adryze_os_session"),
		SessionHashKey:     getEnv("SESSION_HASH_KEY", ""),
		SessionBlockKey:    getEnv("SESSION_BLOCK_KEY", ""),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		WebhookURL:         getEnv("N8N_WEBHOOK_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		Production:         getEnv("APP_ENV", "development") == "production",
	}

	if cfg.OdooDB == "" {
		log.Fatal("ODOO_DB environment variable is required")
	}

	if cfg.SessionHashKey == "" {
		log.Fatal("SESSION_HASH_KEY environment variable is required")
	}

	if cfg.SessionBlockKey == "" {
		log.Fatal("SESSION_BLOCK_KEY environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
