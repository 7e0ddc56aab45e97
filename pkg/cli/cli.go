// Package cli parses the command line and environment configuration.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings parsed from command line arguments.
type Config struct {
	AssetDir string        // directory holding the BMP sprite assets (optional)
	CacheDir string        // decoded-image cache directory ("" disables the cache)
	LogLevel string        // debug, info, warn, error
	Headless bool          // run the simulation without a window
	TickRate int           // fixed simulation ticks per second
	Timeout  time.Duration // stop after this long in headless mode (0 is unlimited)
	ShowHelp bool
}

const defaultTickRate = 10

// ParseArgs parses args into a Config. Environment variables provide
// fallbacks; command line flags win.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	config := &Config{}

	var timeoutSec int
	fs.StringVar(&config.AssetDir, "assets", "", "directory holding BMP sprite assets")
	fs.StringVar(&config.CacheDir, "cache", "", "decoded-image cache directory")
	fs.IntVar(&timeoutSec, "timeout", 0, "stop after this many seconds (headless)")
	fs.IntVar(&timeoutSec, "t", 0, "stop after this many seconds (short form)")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (short form)")
	fs.IntVar(&config.TickRate, "tick-rate", defaultTickRate, "simulation ticks per second")
	fs.BoolVar(&config.Headless, "headless", false, "run without a window")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (short form)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Environment fallbacks; flags take precedence.
	if !config.Headless {
		if headlessEnv := os.Getenv("HEADLESS"); headlessEnv != "" {
			config.Headless = headlessEnv == "1" || strings.ToLower(headlessEnv) == "true"
		}
	}
	if timeoutSec == 0 {
		if timeoutEnv := os.Getenv("TIMEOUT"); timeoutEnv != "" {
			if t, err := strconv.Atoi(timeoutEnv); err == nil && t > 0 {
				timeoutSec = t
			}
		}
	}
	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}

	if timeoutSec < 0 {
		return nil, fmt.Errorf("timeout must be non-negative, got %d", timeoutSec)
	}
	config.Timeout = time.Duration(timeoutSec) * time.Second

	if config.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", config.TickRate)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if fs.NArg() > 0 && config.AssetDir == "" {
		config.AssetDir = fs.Arg(0)
	}

	return config, nil
}

// PrintHelp writes the usage message to stdout.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `snake - a small snake game with its own BMP asset decoder

Usage:
  snake [options] [asset-dir]

Arguments:
  asset-dir     directory holding the BMP sprite assets (optional;
                solid-color tiles are used when omitted)

Options:
  --assets <dir>              BMP sprite asset directory
  --cache <dir>               decoded-image cache directory
  --tick-rate <n>             simulation ticks per second (default: %d)
  -t, --timeout <seconds>     stop after this many seconds in headless mode
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  --headless                  run the simulation without a window
  -h, --help                  show this help

Environment Variables:
  HEADLESS=1                  enable headless mode
  TIMEOUT=<seconds>           headless timeout
  LOG_LEVEL=<level>           log level
`, defaultTickRate)
}
