// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. It is constructed once at
// startup and passed by reference to the components that need it.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port to listen on
	LogLevel string // zap log level ("debug", "info", ...)

	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	DBMaxOpenConns    int           // connection pool ceiling
	DBMaxIdleConns    int           // idle connections kept around
	DBConnMaxLifetime time.Duration // recycle connections after this long

	JWTSecret        string // secret used to sign session tokens
	JWTExpireDays    int    // session token time-to-live in days
	CookieExpireDays int    // session cookie lifetime in days
	BcryptCost       int    // bcrypt cost for password hashing

	PortfolioURL string // public portfolio frontend origin (CORS)
	DashboardURL string // admin dashboard origin (CORS, reset links)

	S3Region    string // object storage region
	S3Bucket    string // bucket holding uploaded media
	S3AccessKey string // static access key (a MinIO root user works too)
	S3SecretKey string // static secret key
	S3Endpoint  string // base endpoint override, empty for AWS proper
	S3PublicURL string // public base URL assets are served from

	SMTPHost     string // outbound mail server host
	SMTPPort     int    // outbound mail server port
	SMTPMail     string // sender address and SMTP username
	SMTPPassword string // SMTP password
	NotifyEmail  string // where contact-form notifications are sent
}

// Load reads configuration from the environment (optionally seeded from a
// .env file) and returns a Config. Missing required variables are fatal.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:      getenv("APP_ENV", "dev"),
		Port:     getenv("APP_PORT", "4000"),
		LogLevel: getenv("APP_LOG_LEVEL", "info"),

		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),

		DBMaxOpenConns:    atoiOrDie("DB_MAX_OPEN_CONNS", getenv("DB_MAX_OPEN_CONNS", "20")),
		DBMaxIdleConns:    atoiOrDie("DB_MAX_IDLE_CONNS", getenv("DB_MAX_IDLE_CONNS", "10")),
		DBConnMaxLifetime: parseDur(getenv("DB_CONN_MAX_LIFETIME", "15m")),

		JWTSecret:        must("JWT_SECRET_KEY"),
		JWTExpireDays:    mustInt("JWT_EXPIRES_DAYS"),
		CookieExpireDays: mustInt("COOKIE_EXPIRES_DAYS"),
		BcryptCost:       atoiOrDie("BCRYPT_COST", getenv("BCRYPT_COST", "10")),

		PortfolioURL: must("PORTFOLIO_URL"),
		DashboardURL: must("DASHBOARD_URL"),

		S3Region:    getenv("S3_REGION", "us-east-1"),
		S3Bucket:    must("S3_BUCKET"),
		S3AccessKey: must("S3_ACCESS_KEY"),
		S3SecretKey: must("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3PublicURL: must("S3_PUBLIC_URL"),

		SMTPHost:     getenv("SMTP_HOST", "localhost"),
		SMTPPort:     atoiOrDie("SMTP_PORT", getenv("SMTP_PORT", "587")),
		SMTPMail:     os.Getenv("SMTP_MAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		NotifyEmail:  getenv("NOTIFY_EMAIL", os.Getenv("SMTP_MAIL")),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	return atoiOrDie(key, must(key))
}

func atoiOrDie(key, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
