package server

import (
	"github.com/maxbolgarin/lang"
)

const (
	defaultName = "git-prompts-mcp-server"
)

// Config represents MCP server configuration. An empty address means
// the server speaks over stdio, which is what MCP clients spawn by
// default; a non-empty address starts a streamable HTTP listener
// instead.
type Config struct {
	Name    string `yaml:"name" env:"SERVER_NAME"`
	Address string `yaml:"address" env:"SERVER_ADDRESS"`
}

func (cfg *Config) PrepareAndValidate() error {
	cfg.Name = lang.Check(cfg.Name, defaultName)
	return nil
}
