package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Client holds runtime configuration for the API client, parsed from
// environment variables.
type Client struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	HomeDir        string
}

// Stub holds runtime configuration for the local stub backend.
type Stub struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	CatalogFile     string
}

// ClientFromEnv builds Client with defaults, overridden by environment variables.
func ClientFromEnv() Client {
	return Client{
		APIBaseURL:     envOrDefault("HEALTHSHOP_API_URL", "http://localhost:8080"),
		RequestTimeout: envDuration("HEALTHSHOP_TIMEOUT_SECONDS", 15*time.Second),
		HomeDir:        envOrDefault("HEALTHSHOP_HOME", defaultHomeDir()),
	}
}

// StubFromEnv builds Stub with defaults, overridden by environment variables.
func StubFromEnv() Stub {
	return Stub{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CatalogFile:     envOrDefault("CATALOG_FILE", ""),
	}
}

func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".healthshop"
	}
	return filepath.Join(home, ".healthshop")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
