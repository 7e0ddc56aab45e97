package cli

import (
	"testing"
	"time"
)

func TestParseArgsDefaults(t *testing.T) {
	config, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if config.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", config.LogLevel)
	}
	if config.TickRate != defaultTickRate {
		t.Errorf("expected default tick rate %d, got %d", defaultTickRate, config.TickRate)
	}
	if config.Headless || config.ShowHelp {
		t.Error("boolean flags must default to false")
	}
	if config.Timeout != 0 {
		t.Errorf("expected no timeout, got %v", config.Timeout)
	}
}

func TestParseArgsFlags(t *testing.T) {
	config, err := ParseArgs([]string{
		"--assets", "sprites",
		"--cache", "/tmp/snake-cache",
		"--tick-rate", "30",
		"--timeout", "5",
		"--log-level", "debug",
		"--headless",
	})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if config.AssetDir != "sprites" {
		t.Errorf("expected asset dir sprites, got %s", config.AssetDir)
	}
	if config.CacheDir != "/tmp/snake-cache" {
		t.Errorf("expected cache dir /tmp/snake-cache, got %s", config.CacheDir)
	}
	if config.TickRate != 30 {
		t.Errorf("expected tick rate 30, got %d", config.TickRate)
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", config.Timeout)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", config.LogLevel)
	}
	if !config.Headless {
		t.Error("expected headless mode")
	}
}

func TestParseArgsPositionalAssetDir(t *testing.T) {
	config, err := ParseArgs([]string{"--headless", "sprites"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if config.AssetDir != "sprites" {
		t.Errorf("expected asset dir sprites, got %s", config.AssetDir)
	}
}

func TestParseArgsInvalidLogLevel(t *testing.T) {
	if _, err := ParseArgs([]string{"--log-level", "loud"}); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestParseArgsInvalidTickRate(t *testing.T) {
	if _, err := ParseArgs([]string{"--tick-rate", "0"}); err == nil {
		t.Error("expected error for zero tick rate")
	}
}

func TestParseArgsEnvFallback(t *testing.T) {
	t.Setenv("HEADLESS", "1")
	t.Setenv("TIMEOUT", "7")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if !config.Headless {
		t.Error("expected headless mode from environment")
	}
	if config.Timeout != 7*time.Second {
		t.Errorf("expected 7s timeout from environment, got %v", config.Timeout)
	}
	if config.LogLevel != "warn" {
		t.Errorf("expected log level warn from environment, got %s", config.LogLevel)
	}
}

func TestParseArgsFlagsBeatEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	config, err := ParseArgs([]string{"--log-level", "debug"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected flag to win over environment, got %s", config.LogLevel)
	}
}
