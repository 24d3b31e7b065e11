// Package config holds the server settings: defaults, an optional YAML
// file, then environment overrides, in that precedence order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Files  FilesConfig  `yaml:"files"`
}

// ServerConfig covers the listener and the connection handler.
type ServerConfig struct {
	Host string `yaml:"host"` // empty = all interfaces
	Port int    `yaml:"port"`
	Name string `yaml:"name"` // Server response header value

	ReadTimeout    time.Duration `yaml:"read_timeout"`     // receive deadline per connection
	ReadBufferSize int           `yaml:"read_buffer_size"` // single-read buffer; larger requests misparse
}

// FilesConfig covers file serving.
type FilesConfig struct {
	Root            string `yaml:"root"`             // directory served, relative paths resolve under it
	DefaultDocument string `yaml:"default_document"` // substituted for "/" and the empty path
}

// Default returns the built-in configuration: port 8080 on all
// interfaces, 5s receive timeout, 8 KiB request buffer, serving the
// working directory with index.html as the default document.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "",
			Port:           8080,
			Name:           "gohttpd/0.1",
			ReadTimeout:    5 * time.Second,
			ReadBufferSize: 8192,
		},
		Files: FilesConfig{
			Root:            ".",
			DefaultDocument: "index.html",
		},
	}
}

// Load returns the defaults with environment overrides applied.
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFile overlays a YAML file on the defaults, then applies
// environment overrides on top.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnvOrDefault("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvAsIntOrDefault("PORT", c.Server.Port)
	c.Files.Root = getEnvOrDefault("FILE_ROOT", c.Files.Root)
}

// Validate rejects settings the server cannot run with. Port 0 is
// allowed so tests can bind an ephemeral port.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read timeout: %v", c.Server.ReadTimeout)
	}
	if c.Server.ReadBufferSize <= 0 {
		return fmt.Errorf("invalid read buffer size: %d", c.Server.ReadBufferSize)
	}
	if c.Files.DefaultDocument == "" {
		return fmt.Errorf("default document must not be empty")
	}
	return nil
}

// ServerAddress returns the listen address in host:port form.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
