package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	LogFile    string `yaml:"log_file"`

	Core CoreConfig `yaml:"core"`
}

// CoreConfig points at the core customer/wallet system this service fronts.
type CoreConfig struct {
	CustomerURL    string `yaml:"customer_url"`
	WalletURL      string `yaml:"wallet_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c CoreConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func Default() *Config {
	return &Config{
		ListenAddr: ":8989",
		LogFile:    "log.txt",
		Core: CoreConfig{
			CustomerURL:    "http://10.0.200.203:8863/api/v1/core/customer",
			WalletURL:      "http://10.0.200.203:8863/api/v1/core/wallet",
			TimeoutSeconds: 10,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}
