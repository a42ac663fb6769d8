package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	Addr          string `env:"QUILL_ADDR" envDefault:":8080"`
	DBPath        string `env:"QUILL_DB_PATH" envDefault:"quill.db"`
	SessionSecret string `env:"QUILL_SESSION_SECRET" envDefault:"secret-key-should-be-changed"`
	JWTSecret     string `env:"QUILL_JWT_SECRET" envDefault:"jwt-secret-should-be-changed"`
	SecureCookies bool   `env:"QUILL_SECURE_COOKIES" envDefault:"true"`

	// Initial admin account, created on first start when no users exist.
	AdminEmail    string `env:"QUILL_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"QUILL_ADMIN_PASSWORD" envDefault:"admin"`

	// S3-compatible object storage for uploaded media.
	S3Endpoint  string `env:"QUILL_S3_ENDPOINT"`
	S3Region    string `env:"QUILL_S3_REGION" envDefault:"us-east-1"`
	S3Bucket    string `env:"QUILL_S3_BUCKET" envDefault:"media"`
	S3AccessKey string `env:"QUILL_S3_ACCESS_KEY"`
	S3SecretKey string `env:"QUILL_S3_SECRET_KEY"`
	// Base URL under which uploaded objects are publicly reachable.
	S3PublicBaseURL string `env:"QUILL_S3_PUBLIC_BASE_URL"`
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
