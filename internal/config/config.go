package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds non-secret settings. Secrets (JWT_SECRET, DATABASE_URL,
// storage keys) are read straight from the environment.
type Config struct {
	Env         string   `yaml:"env"`
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	Storage     Storage  `yaml:"storage"`
}

type Storage struct {
	Endpoint      string `yaml:"endpoint"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	AccessKey     string `yaml:"-"`
	SecretKey     string `yaml:"-"`
}

// Enabled reports whether exports can be uploaded.
func (s Storage) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

func defaults() *Config {
	return &Config{
		Env:         "development",
		Port:        "8000",
		CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Load reads .env (outside production), then the optional YAML file
// named by CONFIG_FILE, then applies environment overrides.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := ReadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// ReadFile merges the YAML file at path into cfg.
func ReadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = GetEnv("APP_ENV", cfg.Env)
	cfg.Port = GetEnv("PORT", cfg.Port)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	cfg.Storage.Endpoint = GetEnv("R2_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.Bucket = GetEnv("R2_BUCKET_NAME", cfg.Storage.Bucket)
	cfg.Storage.PublicBaseURL = GetEnv("R2_PUBLIC_BASE_URL", cfg.Storage.PublicBaseURL)
	cfg.Storage.AccessKey = os.Getenv("R2_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("R2_SECRET_KEY")
}

// GetEnv returns the variable or fallback when unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Require fails on the first missing variable.
func Require(keys ...string) error {
	for _, k := range keys {
		if os.Getenv(k) == "" {
			return errors.New("missing env var: " + k)
		}
	}
	return nil
}
