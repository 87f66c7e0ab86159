package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "APP_ENV", "PORT", "STORE_BACKEND", "DATABASE_URL", "MONGODB_URI", "MONGODB_DATABASE",
		"FIREBASE_PROJECT_ID", "AUTH_ISSUER", "AUTH_AUDIENCE", "CORS_ALLOWED_ORIGINS", "UPLOAD_BACKEND",
		"UPLOAD_DIR", "UPLOAD_BASE_URL", "UPLOAD_MAX_BYTES", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_USE_SSL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDerivesFirebaseIssuer(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("FIREBASE_PROJECT_ID", "civic-clean")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AuthIssuer != "https://securetoken.google.com/civic-clean" {
		t.Fatalf("AuthIssuer mismatch: got %q", cfg.AuthIssuer)
	}
	if cfg.AuthAudience != "civic-clean" {
		t.Fatalf("AuthAudience mismatch: got %q", cfg.AuthAudience)
	}
	if cfg.StoreBackend != StoreBackendPostgres || cfg.Port != "3000" {
		t.Fatalf("defaults mismatch: backend=%q port=%q", cfg.StoreBackend, cfg.Port)
	}
	if cfg.UploadBaseURL != "http://localhost:3000/static" {
		t.Fatalf("UploadBaseURL mismatch: got %q", cfg.UploadBaseURL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigRequiresBackendURL(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "civic-clean")
	t.Setenv("STORE_BACKEND", "mongo")

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "MONGODB_URI") {
		t.Fatalf("LoadConfig error = %v, want MONGODB_URI requirement", err)
	}

	t.Setenv("STORE_BACKEND", "cassandra")
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "unsupported STORE_BACKEND") {
		t.Fatalf("LoadConfig error = %v, want unsupported backend", err)
	}
}

func TestLoadConfigRequiresIdentityProvider(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "postgres://example")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error without identity provider settings")
	}
}

func TestLoadConfigRequiresMinIOCredentials(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("FIREBASE_PROJECT_ID", "civic-clean")
	t.Setenv("UPLOAD_BACKEND", "minio")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "MINIO_ACCESS_KEY") {
		t.Fatalf("LoadConfig error = %v, want MinIO credential requirement", err)
	}
}

func TestLoadConfigReadsYAMLFileBelowEnvironment(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `STORE_BACKEND: "mongo"
MONGODB_URI: "mongodb://file-host:27017"
FIREBASE_PROJECT_ID: "from-file"
PORT: "4000"
CORS_ALLOWED_ORIGINS: "https://a.example, https://b.example"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "5000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StoreBackend != StoreBackendMongo || cfg.MongoURI != "mongodb://file-host:27017" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Port != "5000" {
		t.Fatalf("Port = %q, want environment override 5000", cfg.Port)
	}
	if cfg.AuthAudience != "from-file" {
		t.Fatalf("AuthAudience = %q, want from-file", cfg.AuthAudience)
	}
	expected := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSAllowedOrigins) != len(expected) {
		t.Fatalf("CORSAllowedOrigins mismatch: got %#v want %#v", cfg.CORSAllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("LoadConfig error = %v, want read failure", err)
	}
}

func TestLoadConfigMemoryBackendNeedsNoURL(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("FIREBASE_PROJECT_ID", "civic-clean")
	t.Setenv("UPLOAD_BACKEND", "none")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StoreBackend != StoreBackendMemory || cfg.UploadBackend != UploadBackendNone {
		t.Fatalf("backends = %q/%q", cfg.StoreBackend, cfg.UploadBackend)
	}
}
