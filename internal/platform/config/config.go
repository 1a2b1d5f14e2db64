package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is used to hold all runtime configuration.
type Config struct {
	Election struct {
		AdminKey      string   `envconfig:"ADMIN_KEY"`
		Proposals     []string `envconfig:"PROPOSALS"`
		TallyInterval uint64   `default:"60000000000" envconfig:"TALLY_INTERVAL"` // Default 1 minute
	}
	Server struct {
		ListenAddress string `default:"127.0.0.1:8555" envconfig:"LISTEN_ADDRESS"`
	}
	AWS struct {
		Region          string `default:"ap-southeast-2" envconfig:"AWS_REGION" json:"AWS_REGION"`
		AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" json:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" json:"AWS_SECRET_ACCESS_KEY"`
	}
	Storage struct {
		Bucket     string `default:"standalone" envconfig:"STORAGE_BUCKET"`
		Root       string `default:"./tmp" envconfig:"STORAGE_ROOT"`
		MaxRetries int    `default:"4" envconfig:"STORAGE_MAX_RETRIES"`
		RetryDelay int    `default:"2000" envconfig:"STORAGE_RETRY_DELAY"` // Milliseconds
	}
}

// SafeConfig masks sensitive config values
func SafeConfig(cfg Config) *Config {
	cfgSafe := cfg

	if len(cfgSafe.Election.AdminKey) > 0 {
		cfgSafe.Election.AdminKey = "*** Masked ***"
	}
	if len(cfgSafe.AWS.AccessKeyID) > 0 {
		cfgSafe.AWS.AccessKeyID = "*** Masked ***"
	}
	if len(cfgSafe.AWS.SecretAccessKey) > 0 {
		cfgSafe.AWS.SecretAccessKey = "*** Masked ***"
	}

	return &cfgSafe
}

// Environment returns configuration sourced from environment variables
func Environment() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BALLOT", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
