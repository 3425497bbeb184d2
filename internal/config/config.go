// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Catalog     CatalogConfig
	Checkout    CheckoutConfig
	Session     SessionConfig
	Frontend    FrontendConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type CatalogConfig struct {
	PageSize      int
	FeaturedLimit int
	RelatedLimit  int
}

type CheckoutConfig struct {
	StandardShippingCost float64
	ExpressShippingCost  float64
	Currency             string
}

type SessionConfig struct {
	IdleTTLMinutes int
}

type FrontendConfig struct {
	BaseURL string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Catalog: CatalogConfig{
			PageSize:      getEnvAsInt("CATALOG_PAGE_SIZE", 8),
			FeaturedLimit: getEnvAsInt("CATALOG_FEATURED_LIMIT", 4),
			RelatedLimit:  getEnvAsInt("CATALOG_RELATED_LIMIT", 4),
		},
		Checkout: CheckoutConfig{
			StandardShippingCost: getEnvAsFloat("CHECKOUT_STANDARD_SHIPPING", 5.00),
			ExpressShippingCost:  getEnvAsFloat("CHECKOUT_EXPRESS_SHIPPING", 15.00),
			Currency:             getEnv("CHECKOUT_CURRENCY", "usd"),
		},
		Session: SessionConfig{
			IdleTTLMinutes: getEnvAsInt("SESSION_IDLE_TTL_MINUTES", 30),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog page size must be at least 1")
	}

	if c.Checkout.StandardShippingCost < 0 || c.Checkout.ExpressShippingCost < 0 {
		return fmt.Errorf("shipping costs must be non-negative")
	}

	if c.Session.IdleTTLMinutes < 1 {
		return fmt.Errorf("session idle TTL must be at least 1 minute")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
