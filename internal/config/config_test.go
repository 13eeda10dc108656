package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting default values
	if value := GetString("palette.base_color"); value != "#3B82F6" {
		t.Errorf("Expected default base color #3B82F6, got %s", value)
	}
	if value := GetFloat("palette.saturation"); value != 100 {
		t.Errorf("Expected default saturation 100, got %v", value)
	}
	if value := GetDuration("ui.message_timeout"); value != 3*time.Second {
		t.Errorf("Expected default message timeout 3s, got %v", value)
	}
	if !GetBool("ui.browser") {
		t.Error("Expected ui.browser to default to true")
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.port", "9090")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.port")
	if value != "9090" {
		t.Errorf("Expected port to be 9090, got %s", value)
	}

	// Reload from disk
	InitConfig(configPath)
	if value := GetString("server.port"); value != "9090" {
		t.Errorf("Expected persisted port 9090, got %s", value)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BENCH_LOG_LEVEL", "debug")
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if value := GetString("log.level"); value != "debug" {
		t.Errorf("Expected env override debug, got %s", value)
	}
}
