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

// SourceKind names where the grid rows come from.
type SourceKind int

const (
	SourceDemo SourceKind = iota
	SourceFile
	SourceAPI
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceAPI:
		return "api"
	default:
		return "demo"
	}
}

// Config captures vmgrid settings.
type Config struct {
	APIBind     string
	DataFile    string
	DemoRows    int
	RetryEvery  time.Duration
	MaxAttempts int
	LogFile     string
}

const (
	defaultConfigPath  = "~/.config/vmgrid/config.toml"
	defaultDemoRows    = 40
	defaultRetryEvery  = 2 * time.Second
	defaultMaxAttempts = 5
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DemoRows:    defaultDemoRows,
		RetryEvery:  defaultRetryEvery,
		MaxAttempts: defaultMaxAttempts,
	}
}

// Load locates and parses the vmgrid config, falling back to defaults when missing.
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
		APIBind      string `toml:"api_bind"`
		DataFile     string `toml:"data_file"`
		DemoRows     int    `toml:"demo_rows"`
		RetrySeconds int    `toml:"retry_seconds"`
		MaxAttempts  int    `toml:"max_attempts"`
		LogFile      string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBind = strings.TrimSpace(raw.APIBind)
	if df := strings.TrimSpace(raw.DataFile); df != "" {
		cfg.DataFile = mustExpand(df)
	}
	if lf := strings.TrimSpace(raw.LogFile); lf != "" {
		cfg.LogFile = mustExpand(lf)
	}
	if raw.DemoRows > 0 {
		cfg.DemoRows = raw.DemoRows
	}
	if raw.RetrySeconds > 0 {
		cfg.RetryEvery = time.Duration(raw.RetrySeconds) * time.Second
	}
	if raw.MaxAttempts > 0 {
		cfg.MaxAttempts = raw.MaxAttempts
	}

	return cfg, nil
}

// Source reports which provider the config selects: a data file wins over
// the API, and with neither the demo fleet is used.
func (c Config) Source() SourceKind {
	switch {
	case strings.TrimSpace(c.DataFile) != "":
		return SourceFile
	case strings.TrimSpace(c.APIBind) != "":
		return SourceAPI
	default:
		return SourceDemo
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
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
