// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type ServiceConfig struct {
	BaseURL    string `yaml:"base_url"`
	UploadPath string `yaml:"upload_path"`
	ChatPath   string `yaml:"chat_path"`
	HealthPath string `yaml:"health_path"`
	Timeout    int    `yaml:"timeout"` // seconds
}

type UploadConfig struct {
	// Accept is the picker's extension allow-list. Advisory only, the
	// service decides what it can ingest.
	Accept []string `yaml:"accept"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

type Config struct {
	Service ServiceConfig `yaml:"service"`
	Upload  UploadConfig  `yaml:"upload"`
	Log     LogConfig     `yaml:"log"`
}

// Load reads the config from the user config dir, falling back to defaults
// when no file exists.
func Load() (*Config, error) {
	return load(ConfigPath(), false)
}

// LoadFrom reads an explicitly named config file. Unlike Load, a missing
// file is an error.
func LoadFrom(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !mustExist && os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables in config
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Service.BaseURL = "http://localhost:8000"
	cfg.Service.UploadPath = "/api/documents/upload"
	cfg.Service.ChatPath = "/api/documents/chat"
	cfg.Service.HealthPath = "/health"
	cfg.Service.Timeout = 120
	cfg.Upload.Accept = []string{".pdf", ".txt", ".md"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.File = defaultLogFile()
	return cfg
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = def.Service.BaseURL
	}
	if cfg.Service.UploadPath == "" {
		cfg.Service.UploadPath = def.Service.UploadPath
	}
	if cfg.Service.ChatPath == "" {
		cfg.Service.ChatPath = def.Service.ChatPath
	}
	if cfg.Service.HealthPath == "" {
		cfg.Service.HealthPath = def.Service.HealthPath
	}
	if cfg.Service.Timeout == 0 {
		cfg.Service.Timeout = def.Service.Timeout
	}
	if cfg.Upload.Accept == nil {
		cfg.Upload.Accept = def.Upload.Accept
	}
	for i, ext := range cfg.Upload.Accept {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Upload.Accept[i] = ext
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid service.base_url %q", c.Service.BaseURL)
	}
	if c.Service.Timeout < 0 {
		return fmt.Errorf("service.timeout must be positive, got %d", c.Service.Timeout)
	}
	return nil
}

func ConfigPath() string {
	configDir, _ := os.UserConfigDir()
	if configDir == "" {
		configDir = os.ExpandEnv("$HOME/.config")
	}
	return filepath.Join(configDir, "compass", "config.yaml")
}

func defaultLogFile() string {
	cacheDir, _ := os.UserCacheDir()
	if cacheDir == "" {
		cacheDir = os.ExpandEnv("$HOME/.cache")
	}
	return filepath.Join(cacheDir, "compass", "compass.log")
}
