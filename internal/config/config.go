package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const envPrefix = "catalog"

type Config struct {
	Store StoreConfig
	Log   LogConfig
}

type StoreConfig struct {
	Seed         bool         `envconfig:"SEED" default:"true"`
	DeletePolicy DeletePolicy `envconfig:"DELETE_POLICY" default:"permissive"`
	PageSize     int          `envconfig:"PAGE_SIZE" default:"20"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// DeletePolicy decides what happens when a user or product still referenced
// by an order is deleted.
type DeletePolicy string

const (
	// DeletePolicyPermissive removes the entity; orders keep the data they referenced.
	DeletePolicyPermissive DeletePolicy = "permissive"
	// DeletePolicyRestrict refuses to delete a referenced entity.
	DeletePolicyRestrict DeletePolicy = "restrict"
)

const (
	minPageSize     = 1
	maxPageSize     = 100
	defaultPageSize = 20
)

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Seed:         true,
			DeletePolicy: DeletePolicyPermissive,
			PageSize:     defaultPageSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func (c *Config) validate() error {
	switch c.Store.DeletePolicy {
	case DeletePolicyPermissive, DeletePolicyRestrict:
	default:
		return errors.Errorf("unknown delete policy %q", c.Store.DeletePolicy)
	}

	if c.Store.PageSize < minPageSize || c.Store.PageSize > maxPageSize {
		c.Store.PageSize = defaultPageSize
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}
