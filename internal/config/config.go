package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// AI providers
	ReplicateToken string
	GeminiAPIKey   string

	// CSV dataset storage
	CSVStore string // "memory" or "redis"
	RedisURL string

	// Document rendering
	PDFEnabled bool
	UploadsDir string

	// Social platform credentials (read but not required by core logic)
	InstagramAccessToken string
	FacebookAccessToken  string
	LinkedInAccessToken  string

	// Frontend
	FrontendURL string
}

// Availability reports which external services are usable with the
// loaded credentials.
type Availability struct {
	Replicate bool
	Gemini    bool
	Instagram bool
	Facebook  bool
	LinkedIn  bool
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		ReplicateToken:       os.Getenv("REPLICATE_API_TOKEN"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		CSVStore:             getEnvOrDefault("CSV_STORE", "memory"),
		RedisURL:             os.Getenv("REDIS_URL"),
		PDFEnabled:           getEnvAsBoolOrDefault("PDF_ENABLED", false),
		UploadsDir:           getEnvOrDefault("UPLOADS_DIR", "./public/uploads"),
		InstagramAccessToken: os.Getenv("INSTAGRAM_ACCESS_TOKEN"),
		FacebookAccessToken:  os.Getenv("FACEBOOK_ACCESS_TOKEN"),
		LinkedInAccessToken:  os.Getenv("LINKEDIN_ACCESS_TOKEN"),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

func (c *Config) Services() Availability {
	return Availability{
		Replicate: c.ReplicateToken != "",
		Gemini:    c.GeminiAPIKey != "",
		Instagram: c.InstagramAccessToken != "",
		Facebook:  c.FacebookAccessToken != "",
		LinkedIn:  c.LinkedInAccessToken != "",
	}
}

// Validate logs warnings for missing credentials. AI credentials are not
// required: content generation degrades to static templates and image
// generation to placeholder URLs.
func (c *Config) Validate() {
	svc := c.Services()

	if !svc.Replicate {
		log.Println("⚠️  REPLICATE_API_TOKEN not configured - image/video generation unavailable, text generation falls back")
	}
	if !svc.Gemini {
		log.Println("⚠️  GEMINI_API_KEY not configured - AI content generation backup unavailable")
	}
	if !svc.Instagram {
		log.Println("⚠️  Instagram API not configured - social media integration limited")
	}
	if !svc.Facebook {
		log.Println("⚠️  Facebook API not configured - social media integration limited")
	}
	if !svc.LinkedIn {
		log.Println("⚠️  LinkedIn API not configured - social media integration limited")
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
