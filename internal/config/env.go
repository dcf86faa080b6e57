package config

import (
	"fmt"
	"os"
	"strconv"
)

// FromEnv overlays DSWS_* environment variables onto cfg. Empty variables
// are ignored; a numeric variable that does not parse is an error and
// leaves cfg unchanged.
func FromEnv(cfg *Config) error {
	next := *cfg
	if v := os.Getenv("DSWS_SERVER"); v != "" {
		next.Server = v
	}
	if err := envInt("DSWS_PORT", &next.Port); err != nil {
		return err
	}
	if err := envInt("DSWS_KEEPALIVE_TIMEOUT_MS", &next.KeepaliveTimeoutMs); err != nil {
		return err
	}
	if v := os.Getenv("DSWS_LOG_LEVEL"); v != "" {
		next.LogLevel = v
	}
	if v := os.Getenv("DSWS_LOG_FORMAT"); v != "" {
		next.LogFormat = v
	}
	*cfg = next
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s=%q is not an integer", key, v)
	}
	*dst = n
	return nil
}
