package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	GitHub   GitHubConfig
	Feed     FeedConfig
	Email    EmailConfig
	Session  SessionConfig
	Content  ContentConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path          string
	MigrationsDir string
}

type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	// Token is optional; the repository listing endpoint is public.
	Token  string
	APIURL string
}

// FeedConfig holds the fixed parameters of the projects feed
type FeedConfig struct {
	Account          string
	PerPage          int
	Sort             string
	PlaceholderImage string
	// Timeout in seconds, 0 means the request is bound only to the caller's context
	Timeout int
}

// EmailConfig holds the service/template/key triple of the email relay
type EmailConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	ToName     string
	ToEmail    string
}

type SessionConfig struct {
	Secret string
}

type ContentConfig struct {
	Path string
}

const (
	DefaultFeedPerPage      = 6
	DefaultFeedSort         = "updated"
	DefaultPlaceholderImage = "/static/images/project-placeholder.svg"
	DefaultEmailEndpoint    = "https://api.emailjs.com/api/v1.0/email/send"
)

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "./folio.db"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		},
		GitHub: GitHubConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("GITHUB_CALLBACK_URL", ""),
			Token:        getEnv("GITHUB_TOKEN", ""),
			APIURL:       getEnv("GITHUB_API_URL", ""),
		},
		Feed: FeedConfig{
			Account:          getEnv("FEED_ACCOUNT", "octocat"),
			PerPage:          getEnvAsInt("FEED_PER_PAGE", DefaultFeedPerPage),
			Sort:             getEnv("FEED_SORT", DefaultFeedSort),
			PlaceholderImage: getEnv("FEED_PLACEHOLDER_IMAGE", DefaultPlaceholderImage),
			Timeout:          getEnvAsInt("FEED_TIMEOUT", 0),
		},
		Email: EmailConfig{
			Endpoint:   getEnv("EMAIL_ENDPOINT", DefaultEmailEndpoint),
			ServiceID:  getEnv("EMAIL_SERVICE_ID", ""),
			TemplateID: getEnv("EMAIL_TEMPLATE_ID", ""),
			PublicKey:  getEnv("EMAIL_PUBLIC_KEY", ""),
			PrivateKey: getEnv("EMAIL_PRIVATE_KEY", ""),
			ToName:     getEnv("EMAIL_TO_NAME", ""),
			ToEmail:    getEnv("EMAIL_TO_EMAIL", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
		},
		Content: ContentConfig{
			Path: getEnv("CONTENT_PATH", "data/content.json"),
		},
	}

	return nil
}

// Configured reports whether the relay triple is complete
func (c EmailConfig) Configured() bool {
	return c.Endpoint != "" && c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// Configured reports whether sessions can be signed. Without a secret the
// owner login and inbox stay disabled.
func (c SessionConfig) Configured() bool {
	return c.Secret != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
