package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration loaded from file/env.
type Config struct {
	Server             string `json:"server" yaml:"server"`
	Port               int    `json:"port" yaml:"port"`
	KeepaliveTimeoutMs int    `json:"keepaliveTimeoutMs" yaml:"keepaliveTimeoutMs"`
	LogLevel           string `json:"logLevel" yaml:"logLevel"`
	LogFormat          string `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Server:             "webpi2",
		Port:               50051,
		KeepaliveTimeoutMs: 10000,
		LogLevel:           "warn",
		LogFormat:          "text",
	}
}

// Load reads configuration from a JSON or YAML file (by extension) on top of
// the defaults. An empty path or a file that does not exist yields defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that cfg can be used to reach a server.
func (c Config) Validate() error {
	if c.Server == "" {
		return errors.New("server must be non empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.KeepaliveTimeoutMs < 0 {
		return fmt.Errorf("keepalive timeout %dms must not be negative", c.KeepaliveTimeoutMs)
	}
	return nil
}

// Target returns the host:port dial target.
func (c Config) Target() string {
	return net.JoinHostPort(c.Server, strconv.Itoa(c.Port))
}

// KeepaliveTimeout returns the keepalive ack timeout as a duration.
func (c Config) KeepaliveTimeout() time.Duration {
	return time.Duration(c.KeepaliveTimeoutMs) * time.Millisecond
}
