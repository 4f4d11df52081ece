package config

import (
	"log"
	"os"
	"strconv"

	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 1440)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// SMTP config
	configs.SMTP.Host = GetEnv("SMTP_HOST", "")
	configs.SMTP.Port = GetEnvAsInt("SMTP_PORT", 587)
	configs.SMTP.Username = GetEnv("SMTP_USERNAME", "")
	configs.SMTP.Password = GetEnv("SMTP_PASSWORD", "")
	configs.SMTP.From = GetEnv("SMTP_FROM", "")
	configs.SMTP.StartTLS = GetEnvAsBool("SMTP_STARTTLS", true)

	// Auth policy config
	configs.Auth.OTPLength = GetEnvAsInt("OTP_LENGTH", 6)
	configs.Auth.OTPExpiryMinutes = GetEnvAsInt("OTP_EXPIRY_MINUTES", 5)
	configs.Auth.MaxOTPAttempts = GetEnvAsInt("MAX_OTP_ATTEMPTS", 5)
	configs.Auth.MaxResendAttempts = GetEnvAsInt("MAX_RESEND_ATTEMPTS", 3)
	configs.Auth.LockoutMinutes = GetEnvAsInt("LOCKOUT_MINUTES", 30)
	configs.Auth.RateRegisterPerHour = GetEnvAsInt("RATE_LIMIT_REGISTER_PER_HOUR", 3)
	configs.Auth.RateLoginPer15Min = GetEnvAsInt("RATE_LIMIT_LOGIN_PER_15MIN", 5)
	configs.Auth.RateResendPerHour = GetEnvAsInt("RATE_LIMIT_RESEND_PER_HOUR", 3)
	configs.Auth.RateVerifyPer5Min = GetEnvAsInt("RATE_LIMIT_VERIFY_PER_5MIN", 5)
	configs.Auth.RateIPPerHour = GetEnvAsInt("RATE_LIMIT_IP_PER_HOUR", 20)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
