package app

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitprompt/internal/config"
)

// LoadConfig reads configuration from an optional YAML file and the
// environment. Environment variables win over file values.
func LoadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, errm.Wrap(err, "read config file")
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, errm.Wrap(err, "read environment")
	}
	return cfg, nil
}
