package config

import (
	"strings"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gitprompt/internal/git"
	"github.com/maxbolgarin/gitprompt/internal/model"
	"github.com/maxbolgarin/gitprompt/internal/server"
	"github.com/maxbolgarin/lang"
)

const (
	defaultMaxHistory = 1000
)

// Config represents the main application configuration. It is built
// once at startup from a YAML file, environment variables and CLI
// flags, then passed down by value: there is no ambient global state.
type Config struct {
	// Repository is the path to the git repository to operate on.
	Repository string `yaml:"repository" env:"GIT_REPOSITORY"`
	// Excludes are glob patterns of changed files to drop from every
	// diff output, comma-separated when set from the environment.
	Excludes []string `yaml:"excludes" env:"GIT_EXCLUDES"`
	// Format selects between JSON and plain text rendering.
	Format model.Format `yaml:"format" env:"GIT_OUTPUT_FORMAT"`
	// MaxHistory bounds how many commits ancestor-based history
	// commands will return.
	MaxHistory int `yaml:"max_history" env:"GIT_MAX_HISTORY"`

	Server server.Config `yaml:"server"`
}

// PrepareAndValidate fills defaults and rejects invalid values.
func (cfg *Config) PrepareAndValidate() error {
	cfg.Format = model.Format(strings.ToLower(string(lang.Check(cfg.Format, model.FormatText))))
	cfg.MaxHistory = lang.Check(cfg.MaxHistory, defaultMaxHistory)

	if cfg.Repository == "" {
		return ErrMissingRepository
	}
	if !cfg.Format.IsValid() {
		return erro.Wrap(ErrInvalidFormat, string(cfg.Format))
	}
	for _, pattern := range cfg.Excludes {
		if pattern != "" && !git.ValidPattern(pattern) {
			return erro.Wrap(ErrInvalidExcludePattern, pattern)
		}
	}
	return cfg.Server.PrepareAndValidate()
}
