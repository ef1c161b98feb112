package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("WHATSAPP_GRAPH_API_TOKEN", "test-graph-token")
	os.Setenv("WHATSAPP_VERIFY_TOKEN", "test-verify-token")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("WHATSAPP_GRAPH_API_TOKEN")
	os.Unsetenv("WHATSAPP_VERIFY_TOKEN")
	os.Unsetenv("SESSION_DRIVER")
	os.Unsetenv("WHATSAPP_API_VERSION")
}

// TestWhatsAppFieldsUnmarshal tests that WhatsApp credentials are read from the environment
func TestWhatsAppFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.WhatsApp.GraphAPIToken != "test-graph-token" {
		t.Errorf("Expected WhatsApp.GraphAPIToken to be test-graph-token, got %s", cfg.WhatsApp.GraphAPIToken)
	}

	if cfg.WhatsApp.VerifyToken != "test-verify-token" {
		t.Errorf("Expected WhatsApp.VerifyToken to be test-verify-token, got %s", cfg.WhatsApp.VerifyToken)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}
}

// TestWhatsAppTemplateDefaults tests the template names and API version from config.yaml
func TestWhatsAppTemplateDefaults(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.WhatsApp.APIVersion != "v19.0" {
		t.Errorf("Expected WhatsApp.APIVersion to be v19.0, got %s", cfg.WhatsApp.APIVersion)
	}

	if cfg.WhatsApp.LanguageCode != "en_US" {
		t.Errorf("Expected WhatsApp.LanguageCode to be en_US, got %s", cfg.WhatsApp.LanguageCode)
	}

	if cfg.WhatsApp.WelcomeTemplate != "welcome_custom" {
		t.Errorf("Expected WhatsApp.WelcomeTemplate to be welcome_custom, got %s", cfg.WhatsApp.WelcomeTemplate)
	}

	if cfg.WhatsApp.ProductTemplate != "product_display_template" {
		t.Errorf("Expected WhatsApp.ProductTemplate to be product_display_template, got %s", cfg.WhatsApp.ProductTemplate)
	}
}

// TestSessionDriverOverride tests that the session driver can be switched by environment
func TestSessionDriverOverride(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")
	if GetViper().Session.Driver != "memory" {
		t.Errorf("Expected default Session.Driver to be memory, got %s", GetViper().Session.Driver)
	}

	os.Setenv("SESSION_DRIVER", "redis")
	InitViper(".", "test")
	if GetViper().Session.Driver != "redis" {
		t.Errorf("Expected Session.Driver to be redis, got %s", GetViper().Session.Driver)
	}
}

// TestCatalogImagesUnmarshal tests that the image table is read as an ordered list
func TestCatalogImagesUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if len(cfg.Catalog.Images) != 5 {
		t.Fatalf("Expected 5 catalog images, got %d", len(cfg.Catalog.Images))
	}

	// Product names keep their case and punctuation
	if cfg.Catalog.Images[0].Name != "Pure Nicotine USP/ EP 99.5+" {
		t.Errorf("Expected first image name to be preserved, got %q", cfg.Catalog.Images[0].Name)
	}

	if cfg.Catalog.Images[0].URL == "" {
		t.Error("Expected first image URL to be set")
	}
}
