package config

import (
	"fmt"
	"os"
)

// Config holds all environment-level configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Media    MediaConfig
	Admin    AdminConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig accepts either a full connection URL or individual parts.
type DatabaseConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
}

// MediaConfig is the external media host credential triple. All three must
// be present for hosted uploads; otherwise uploads fall back to inline data
// URLs.
type MediaConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func (m MediaConfig) Configured() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

// AdminConfig gates write endpoints. An empty hash leaves them open, which
// matches deployments that keep the password check in the admin client.
type AdminConfig struct {
	PasswordHash string
}

type CORSConfig struct {
	FrontendURL string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			DatabaseURL: getEnv("DATABASE_URL", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "cenit_labs"),
			SSLMode:     getEnv("DB_SSLMODE", "require"),
		},
		Media: MediaConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Admin: AdminConfig{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		CORS: CORSConfig{
			FrontendURL: getEnv("FRONTEND_URL", ""),
		},
	}
}

// URL returns the store connection string, preferring DATABASE_URL when set.
func (d DatabaseConfig) URL() string {
	if d.DatabaseURL != "" {
		return d.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
