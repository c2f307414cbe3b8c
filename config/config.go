// Package config loads the runtime settings shared by the lookup function and
// the seed tool.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultTableName is the dynamodb table holding cik to company name items.
const DefaultTableName = "sec-company-lookup"

// Config holds all configuration for the application.
type Config struct {
	TableName string
	Region    string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, optionally seeded by a
// .env file in the working directory.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	return fromViper(newViper())
}

// loadDotEnv exports the variables of path without overriding the
// environment. A missing file is the normal case inside lambda and is not an
// error; an unreadable or malformed one is.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || os.IsNotExist(errors.Cause(err)) {
		return nil
	}

	return errors.Wrapf(err, "failed loading %s", path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("TABLE_NAME", DefaultTableName)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TableName: v.GetString("TABLE_NAME"),
		Region:    v.GetString("AWS_REGION"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}

	if cfg.TableName == "" {
		cfg.TableName = DefaultTableName
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.Errorf("LOG_FORMAT must be json or text, got '%s'", cfg.LogFormat)
	}

	return cfg, nil
}
