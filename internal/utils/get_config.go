package utils

import (
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Remote store (Postgres) configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Local store (sqlite) path
	LocalStorePath string `yaml:"LOCAL_STORE_PATH"`

	// When true, RecordScan refuses to fall back to the local store and
	// reports that remote persistence must be configured instead.
	RequireRemote bool `yaml:"REQUIRE_REMOTE"`

	// External collaborators
	ProductLookupURL  string `yaml:"PRODUCT_LOOKUP_URL"`
	RecipeUpstreamURL string `yaml:"RECIPE_UPSTREAM_URL"`
	BarcodeDecoderURL string `yaml:"BARCODE_DECODER_URL"`
}

// config is read from request-handling goroutines and reset at runtime when
// the remote provider rejects the credentials, so every access goes through
// configMu.
var (
	config   Config
	configMu sync.RWMutex
)

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	var loaded Config
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	configMu.Lock()
	config = loaded
	configMu.Unlock()

	os.Setenv("JWT_SECRET", loaded.JWTSecret)
}

func GetConfig(key string) string {
	configMu.RLock()
	defer configMu.RUnlock()

	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "LOCAL_STORE_PATH":
		return config.LocalStorePath
	case "PRODUCT_LOOKUP_URL":
		return config.ProductLookupURL
	case "RECIPE_UPSTREAM_URL":
		return config.RecipeUpstreamURL
	case "BARCODE_DECODER_URL":
		return config.BarcodeDecoderURL
	default:
		return ""
	}
}

func RequireRemote() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return config.RequireRemote
}

// IsRemoteConfigured reports whether the remote store settings look usable.
// Placeholder values (template markers, obviously short hosts or names) are
// treated the same as missing configuration so the service degrades to the
// local store instead of failing every remote call.
func IsRemoteConfigured() bool {
	configMu.RLock()
	defer configMu.RUnlock()

	return looksConfigured(config.DBHost, 3) &&
		looksConfigured(config.DBName, 3) &&
		looksConfigured(config.DBUser, 2)
}

// ResetRemoteConfig clears the stored remote settings after the provider has
// rejected the credentials, so IsRemoteConfigured reports false until the
// operator reconfigures.
func ResetRemoteConfig() {
	configMu.Lock()
	defer configMu.Unlock()

	config.DBHost = ""
	config.DBName = ""
	config.DBUser = ""
	config.DBPassword = ""
}

func looksConfigured(value string, minLen int) bool {
	if len(value) < minLen {
		return false
	}
	lower := strings.ToLower(value)
	if strings.Contains(value, "YOUR_") ||
		strings.Contains(lower, "example") ||
		strings.Contains(lower, "placeholder") ||
		strings.Contains(lower, "changeme") {
		return false
	}
	return true
}
