package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Session  SessionConfig
	Roblox   RobloxConfig
	Cookie   CookieConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	// Secret signs the session cookie. The fixed default is a known
	// hardening gap kept for parity with existing deployments.
	Secret     string
	TTLDays    int
	CookieName string
}

// RobloxConfig holds the external identity gateway configuration
type RobloxConfig struct {
	GroupID      int64
	UsersAPIURL  string
	GroupsAPIURL string
}

// CookieConfig holds cookie attributes
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	groupID, err := strconv.ParseInt(getEnv("ROBLOX_GROUP_ID", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ROBLOX_GROUP_ID: %w", err)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Session:  loadSessionConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Roblox: RobloxConfig{
			GroupID:      groupID,
			UsersAPIURL:  getEnv("ROBLOX_USERS_API", "https://users.roblox.com"),
			GroupsAPIURL: getEnv("ROBLOX_GROUPS_API", "https://groups.roblox.com"),
		},
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "staffhub"),
	}
}

// loadSessionConfig loads session config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	ttlDays, _ := strconv.Atoi(getEnv("SESSION_TTL_DAYS", "30"))
	if ttlDays < 1 {
		ttlDays = 30
	}

	return SessionConfig{
		Secret:     getEnv(prefix+"SESSION_SECRET", "default_session_secret"),
		TTLDays:    ttlDays,
		CookieName: getEnv("SESSION_COOKIE_NAME", "staffhub_session"),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://staff.rogroup.example"
	}
	return origins
}
