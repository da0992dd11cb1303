package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Client holds settings for the trivia CLI. Values come from flags bound
// into v, TRIVIA_* environment variables and an optional config file.
type Client struct {
	APIURL  string
	Timeout time.Duration
	LogFile string
}

// NewClientViper returns a viper instance with the CLI defaults and
// environment binding set up. Flags are bound by the caller.
func NewClientViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("api-url", "http://localhost:5000")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("log-file", "")

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadClient reads the config file, if any, and resolves the settings.
// An explicit path must exist; the default location may be absent.
func LoadClient(v *viper.Viper, path string) (*Client, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "trivia"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Client{
		APIURL:  v.GetString("api-url"),
		Timeout: v.GetDuration("timeout"),
		LogFile: v.GetString("log-file"),
	}
	if cfg.APIURL == "" {
		return nil, errors.New("api-url must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
