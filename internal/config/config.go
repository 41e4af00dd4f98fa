package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings the control panel reads from config.toml.
type Config struct {
	APIBase        string
	PollInterval   time.Duration
	RequestTimeout time.Duration // zero means no timeout
	LogFile        string
	LogLevel       string
	WideLayoutMin  int // terminal columns at which the two-column layout starts
}

const (
	defaultConfigPath    = "~/.config/recordify/config.toml"
	defaultLogFile       = "~/.local/state/recordify/recordify.log"
	defaultAPIBase       = "http://localhost:8000"
	defaultPollInterval  = 2 * time.Second
	defaultLogLevel      = "info"
	defaultWideLayoutMin = 86
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:       defaultAPIBase,
		PollInterval:  defaultPollInterval,
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
		WideLayoutMin: defaultWideLayoutMin,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		PollInterval   string `toml:"poll_interval"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		WideLayoutMin  int    `toml:"wide_layout_min"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if poll := strings.TrimSpace(raw.PollInterval); poll != "" {
		d, err := time.ParseDuration(poll)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: invalid poll_interval %q", raw.PollInterval)
		}
		cfg.PollInterval = d
	}
	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("parse config: invalid request_timeout %q", raw.RequestTimeout)
		}
		cfg.RequestTimeout = d
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if raw.WideLayoutMin > 0 {
		cfg.WideLayoutMin = raw.WideLayoutMin
	}

	return cfg, nil
}

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
