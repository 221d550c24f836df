package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Cache      CacheConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type CacheConfig struct {
	Enabled bool
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/backoffice")

	// Set up environment variables support
	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	v.SetDefault("deployment.mode", types.ModeEmbedded)
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("cache.enabled", true)

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and for embedding without a config file
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Cache:      CacheConfig{Enabled: true},
	}
}
