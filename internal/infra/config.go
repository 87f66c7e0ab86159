package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMongo    = "mongo"
	StoreBackendMemory   = "memory"

	UploadBackendFile  = "file"
	UploadBackendMinIO = "minio"
	UploadBackendNone  = "none"
)

// Config represents application configuration loaded from environment variables.
// An optional YAML file named by CONFIG_FILE supplies values for any key the
// environment leaves unset.
type Config struct {
	AppEnv             string
	Port               string
	StoreBackend       string
	DatabaseURL        string
	MongoURI           string
	MongoDatabase      string
	FirebaseProjectID  string
	AuthIssuer         string
	AuthAudience       string
	CORSAllowedOrigins []string
	RateLimitPerMin    int
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	UploadBackend      string
	UploadDir          string
	UploadBaseURL      string
	UploadMaxBytes     int64
	MinIO              MinIOConfig
}

// MinIOConfig describes the S3-compatible bucket used for issue images.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

type configSource struct {
	file map[string]string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	src := configSource{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		values, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		src.file = values
	}

	port := src.get("PORT", "3000")
	cfg := &Config{
		AppEnv:             src.get("APP_ENV", "development"),
		Port:               port,
		StoreBackend:       strings.ToLower(src.get("STORE_BACKEND", StoreBackendPostgres)),
		DatabaseURL:        src.get("DATABASE_URL", ""),
		MongoURI:           src.get("MONGODB_URI", ""),
		MongoDatabase:      src.get("MONGODB_DATABASE", "civicCleanDB"),
		FirebaseProjectID:  src.get("FIREBASE_PROJECT_ID", ""),
		AuthIssuer:         src.get("AUTH_ISSUER", ""),
		AuthAudience:       src.get("AUTH_AUDIENCE", ""),
		CORSAllowedOrigins: splitCSV(src.get("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitPerMin:    src.getInt("RATE_LIMIT_PER_MINUTE", 120),
		HTTPReadTimeout:    time.Second * time.Duration(src.getInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(src.getInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(src.getInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		UploadBackend:      strings.ToLower(src.get("UPLOAD_BACKEND", UploadBackendFile)),
		UploadDir:          src.get("UPLOAD_DIR", "./uploads"),
		UploadBaseURL:      src.get("UPLOAD_BASE_URL", fmt.Sprintf("http://localhost:%s/static", port)),
		UploadMaxBytes:     int64(src.getInt("UPLOAD_MAX_BYTES", 5<<20)),
		MinIO: MinIOConfig{
			Endpoint:  src.get("MINIO_ENDPOINT", ""),
			AccessKey: src.get("MINIO_ACCESS_KEY", ""),
			SecretKey: src.get("MINIO_SECRET_KEY", ""),
			Bucket:    src.get("MINIO_BUCKET", "issue-images"),
			Region:    src.get("MINIO_REGION", ""),
			UseSSL:    src.getBool("MINIO_USE_SSL", false),
			PublicURL: src.get("MINIO_PUBLIC_URL", ""),
		},
	}

	if cfg.AuthIssuer == "" && cfg.FirebaseProjectID != "" {
		cfg.AuthIssuer = "https://securetoken.google.com/" + cfg.FirebaseProjectID
	}
	if cfg.AuthAudience == "" {
		cfg.AuthAudience = cfg.FirebaseProjectID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case StoreBackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGODB_DATABASE is required")
		}
	case StoreBackendMemory:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}

	if c.AuthIssuer == "" || c.AuthAudience == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID or AUTH_ISSUER and AUTH_AUDIENCE are required")
	}

	switch c.UploadBackend {
	case UploadBackendFile:
		if c.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required")
		}
	case UploadBackendMinIO:
		if c.MinIO.Endpoint == "" || c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
			return fmt.Errorf("MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
		}
		if c.MinIO.Bucket == "" {
			return fmt.Errorf("MINIO_BUCKET is required")
		}
	case UploadBackendNone:
	default:
		return fmt.Errorf("unsupported UPLOAD_BACKEND %q", c.UploadBackend)
	}

	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func readConfigFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return values, nil
}

func (s configSource) get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v, ok := s.file[key]; ok && v != "" {
		return v
	}
	return fallback
}

func (s configSource) getInt(key string, fallback int) int {
	if v := s.get(key, ""); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func (s configSource) getBool(key string, fallback bool) bool {
	if v := s.get(key, ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
