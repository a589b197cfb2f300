package appcfg

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. WALLETGEN_LOG_LEVEL.
const EnvPrefix = "walletgen"

type Config struct {
	Language             string `yaml:"language" envconfig:"LANGUAGE"`   // "en" | "ru"
	LogLevel             string `yaml:"log_level" envconfig:"LOG_LEVEL"` // "debug"|"info"|"warn"|"error"
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console" envconfig:"HIDE_SECRETS_IN_CONSOLE"`
	Cores                int    `yaml:"cores" envconfig:"CORES"` // 0 = all CPUs

	Output   string `yaml:"output" envconfig:"OUTPUT"`
	Prefix   string `yaml:"prefix" envconfig:"PREFIX"`
	KeyType  string `yaml:"key_type" envconfig:"KEY_TYPE"`
	LogsBase string `yaml:"logs_base" envconfig:"LOGS_BASE"`
	Strict   bool   `yaml:"strict" envconfig:"STRICT"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads a YAML config file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}

// ApplyEnv overrides fields from WALLETGEN_* variables that are set.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("app config env: %w", err)
	}
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Output == "" {
		c.Output = "data/wallets/wallets_info.json"
	}
	if c.Prefix == "" {
		c.Prefix = "cosmos"
	}
	if c.KeyType == "" {
		c.KeyType = "secp256k1"
	}
	if c.LogsBase == "" {
		c.LogsBase = "logs"
	}
}
