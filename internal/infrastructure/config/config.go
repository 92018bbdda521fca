package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	APIBaseURL  string
	DatabaseURL string

	SessionHashKey  []byte // base64
	SessionBlockKey []byte // base64

	Environment string
}

// FromEnv loads configuration from the environment, reading a .env file first
// when one exists. The backend base URL is read once here and injected into
// every collaborator that talks to the network.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:    envDefault("HTTP_ADDR", ":8080"),
		APIBaseURL:  envDefault("API_BASE_URL", "http://localhost:5000/api"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Environment: envDefault("ENV", "development"),
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required")
	}
	var err error
	cfg.SessionHashKey, err = mustB64("SESSION_HASH_KEY")
	if err != nil {
		return cfg, err
	}
	cfg.SessionBlockKey, err = mustB64("SESSION_BLOCK_KEY")
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

// APIBaseURL resolves just the backend base URL, for commands that never
// touch the local database or sessions.
func APIBaseURL() string {
	_ = godotenv.Load()
	return envDefault("API_BASE_URL", "http://localhost:5000/api")
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}

func mustB64(k string) ([]byte, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return nil, fmt.Errorf("%s is required (base64)", k)
	}
	if b, err := base64.StdEncoding.DecodeString(v); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}
