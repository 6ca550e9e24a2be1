package main

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

// Config represents the dtg.yaml configuration file.
type Config struct {
	Formats   []string `yaml:"formats"`
	Named     []string `yaml:"named"`
	Zones     []string `yaml:"zones"`
	Separator *string  `yaml:"separator"`
	LogFile   string   `yaml:"log_file"`
}

// configPath returns the config file to read and whether it was asked for
// explicitly. Explicit files must exist; the default location may be absent.
func configPath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv("DTG_CONFIG"); env != "" {
		return env, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "dtg", "dtg.yaml"), false
}

// loadConfig reads the config file and applies environment overrides.
// Precedence: CLI flags > env vars > config file > defaults; flags are applied by the caller.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decodeConfig(data, cfg); err != nil {
				return nil, dtgerr.Wrap(dtgerr.ErrConfigInvalid, err, "failed to parse config file").
					With("path", path)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, dtgerr.Wrap(dtgerr.ErrConfigInvalid, err, "failed to read config file").
				With("path", path)
		}
	}

	if env := os.Getenv("DTG_ZONE"); env != "" {
		cfg.Zones = splitList(env)
	}
	if env, ok := os.LookupEnv("DTG_SEPARATOR"); ok {
		cfg.Separator = &env
	}

	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// splitList splits a comma-separated list, trimming blanks around entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
