package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const DefaultConfigFileName = "config.json"

// DefaultAPIHost is where the help desk api service runs unless the
// config file says otherwise.
const DefaultAPIHost = "http://127.0.0.1:8000"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/deskhelp")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

type Config struct {
	APIHost string `json:"api_host,omitempty"`
}

func (c *Config) Save() error {
	if _, err := os.Stat(DefaultConfigDir); os.IsNotExist(err) {
		if err := os.MkdirAll(DefaultConfigDir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(DefaultConfigFilePath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(c); err != nil {
		return err
	}
	return nil
}

func LoadFromFile() (*Config, error) {
	f, err := os.Open(DefaultConfigFilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// APIHost returns the base url of the help desk backend.
// A missing or incomplete config file falls back to DefaultAPIHost.
func APIHost() string {
	cfg, err := LoadFromFile()
	if err != nil || cfg.APIHost == "" {
		return DefaultAPIHost
	}
	return cfg.APIHost
}

// version is set via ldflags at build time
var version = "dev"

func Version() string {
	return version
}
