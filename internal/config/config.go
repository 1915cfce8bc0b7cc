// Package config loads application configuration from environment variables.
package config

import (
	"net/url"
	"os"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Port                  string
	Mongo                 MongoConfig
	Gemini                GeminiConfig
	S3                    S3Config
	AllowedOriginSuffixes []string
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// GeminiConfig holds Google Gemini API settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// S3Config holds settings for the drawings bucket.
type S3Config struct {
	Bucket string
	Region string
}

// Load reads configuration from the environment.
func Load() Config {
	cfg := Config{
		Port: getEnv("PORT", "8000"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URL", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "playverse"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		S3: S3Config{
			Bucket: os.Getenv("DRAWINGS_BUCKET"),
			Region: getEnv("AWS_REGION", "ap-south-1"),
		},
		AllowedOriginSuffixes: []string{".vercel.app"},
	}
	if extra := os.Getenv("ALLOWED_ORIGIN_SUFFIXES"); extra != "" {
		cfg.AllowedOriginSuffixes = strings.Split(extra, ",")
	}
	return cfg
}

// AllowOrigin decides whether a cross-origin request may proceed.
// Empty origins (curl, Postman) and localhost are always allowed; everything
// else must match one of the configured host suffixes.
func (c Config) AllowOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	for _, suffix := range c.AllowedOriginSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
