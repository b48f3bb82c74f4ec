package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageDrive    = "drive"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StorageBackend string
	DatabaseURL    string
	SQLitePath     string

	DriveFolderID      string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AdminPasswordHash is a bcrypt hash; ADMIN_PASSWORD is hashed at startup when no hash is set.
	AdminPassword     string
	AdminPasswordHash string

	RateLimit          string
	CORSAllowedOrigins []string

	ChurchCode              string
	ChurchName              string
	ReconciliationMode      string
	PublicServiceCategories []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "./data/offerings.db")
	v.SetDefault("DRIVE_FOLDER_ID", "")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REFRESH_TOKEN", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "offering-tracker")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CHURCH_CODE", "NIMT02")
	v.SetDefault("CHURCH_NAME", "La Empresa")
	v.SetDefault("RECONCILIATION_MODE", "independent")
	v.SetDefault("PUBLIC_SERVICE_CATEGORIES", "Luz,Agua")

	v.AutomaticEnv()

	cfg := &Config{
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		LogLevel:                strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageBackend:          strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DatabaseURL:             v.GetString("PGSQL_URL"),
		SQLitePath:              v.GetString("SQLITE_PATH"),
		DriveFolderID:           v.GetString("DRIVE_FOLDER_ID"),
		GoogleClientID:          v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:      v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRefreshToken:      v.GetString("GOOGLE_REFRESH_TOKEN"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTIssuer:               v.GetString("JWT_ISSUER"),
		AdminPassword:           v.GetString("ADMIN_PASSWORD"),
		AdminPasswordHash:       v.GetString("ADMIN_PASSWORD_HASH"),
		RateLimit:               v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ChurchCode:              v.GetString("CHURCH_CODE"),
		ChurchName:              v.GetString("CHURCH_NAME"),
		ReconciliationMode:      v.GetString("RECONCILIATION_MODE"),
		PublicServiceCategories: splitList(v.GetString("PUBLIC_SERVICE_CATEGORIES")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required for the %s storage backend", StoragePostgres)
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s storage backend", StorageSQLite)
		}
	case StorageDrive:
		if c.DriveFolderID == "" || c.GoogleClientID == "" || c.GoogleClientSecret == "" || c.GoogleRefreshToken == "" {
			return fmt.Errorf("DRIVE_FOLDER_ID, GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REFRESH_TOKEN are required for the %s storage backend", StorageDrive)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.JWTSecret == defaultJWTSecret {
		if c.IsProduction {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		log.Println("Warning: neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set. Login is disabled.")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
