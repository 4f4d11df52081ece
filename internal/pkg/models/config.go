package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SMTPConfig contains outbound mail configuration for OTP delivery
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	StartTLS bool
}

// AuthConfig contains OTP, lockout and rate limit policy configuration
type AuthConfig struct {
	OTPLength           int // number of digits in a generated code
	OTPExpiryMinutes    int // OTP and attempt-counter TTL
	MaxOTPAttempts      int // failed validations before lockout
	MaxResendAttempts   int // resends allowed per hour
	LockoutMinutes      int // account lock duration after exhausting attempts
	RateRegisterPerHour int
	RateLoginPer15Min   int
	RateResendPerHour   int
	RateVerifyPer5Min   int
	RateIPPerHour       int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
