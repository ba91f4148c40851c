package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration the application reads at startup.
type Config struct {
	ServerPort     int
	DatabaseURL    string
	PublicBaseURL  string
	UploadDir      string
	AllowedOrigins []string
	JWTSecretKey   string
	DBMaxOpenConns int

	// Storage backend: "local" (default) or "r2".
	StorageBackend string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables. A .env file is
// loaded first if present; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("http://localhost:%d", port)
	}
	publicBaseURL = strings.TrimRight(publicBaseURL, "/")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	maxConns := 5
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		maxConns, err = strconv.Atoi(raw)
		if err != nil || maxConns <= 0 {
			return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be a positive integer, got %q", raw)
		}
	}

	cfg := &Config{
		ServerPort:     port,
		DatabaseURL:    dbURL,
		PublicBaseURL:  publicBaseURL,
		UploadDir:      uploadDir,
		AllowedOrigins: origins,
		JWTSecretKey:   jwtKey,
		DBMaxOpenConns: maxConns,
		StorageBackend: os.Getenv("STORAGE_BACKEND"),
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = "local"
	}

	if cfg.StorageBackend == "r2" {
		cfg.R2AccountID = os.Getenv("R2_ACCOUNT_ID")
		cfg.R2AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
		cfg.R2SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
		cfg.R2BucketName = os.Getenv("R2_BUCKET_NAME")
		cfg.R2PublicBaseURL = os.Getenv("R2_PUBLIC_BASE_URL")
		if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" ||
			cfg.R2BucketName == "" || cfg.R2PublicBaseURL == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND=r2 requires all R2_* environment variables")
		}
	}

	return cfg, nil
}
