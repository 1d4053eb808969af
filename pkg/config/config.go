package config

import (
	"os"

	"github.com/codingconcepts/env"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/quantmarket/hooktrader/pkg/webhook"
)

// DefaultWebhookURL is the automation endpoint this tool was built for. It
// can be overridden from the config file or HOOKTRADER_WEBHOOK_URL.
const DefaultWebhookURL = "https://webhook.quantmarketintelligence.com/"

type DatabaseConfig struct {
	// DSN is the sqlite path for the request log. Empty disables the log.
	DSN string `json:"dsn,omitempty" yaml:"dsn,omitempty" env:"HOOKTRADER_DATABASE_DSN"`
}

type Config struct {
	Webhook  webhook.Config `json:"webhook" yaml:"webhook"`
	Database DatabaseConfig `json:"database,omitempty" yaml:"database,omitempty"`
}

func Default() *Config {
	return &Config{
		Webhook: webhook.Config{
			URL: DefaultWebhookURL,
		},
	}
}

// Load reads the optional YAML config file, then applies environment
// overrides. A missing file is not an error; the defaults plus environment
// must be enough to run.
func Load(path string) (*Config, error) {
	config := Default()

	if len(path) > 0 {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "can not read config file %s", path)
		}

		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, errors.Wrapf(err, "can not parse config file %s", path)
		}
	}

	if err := env.Set(&config.Webhook); err != nil {
		return nil, errors.Wrap(err, "can not apply webhook environment overrides")
	}

	if err := env.Set(&config.Database); err != nil {
		return nil, errors.Wrap(err, "can not apply database environment overrides")
	}

	if len(config.Webhook.URL) == 0 {
		return nil, errors.New("webhook url must not be empty")
	}

	return config, nil
}
