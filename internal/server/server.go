// Package server registers the git prompts and tools on an MCP server
// and runs it over stdio or streamable HTTP. It holds no logic of its
// own: every handler is a thin call into the service.
package server

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"
)

// Service is the set of formatting operations the server exposes.
type Service interface {
	Diff(ctx context.Context, ancestor string) (string, error)
	CachedDiff(ctx context.Context) (string, error)
	CommitMessages(ctx context.Context, ancestor string) (string, error)
	DiffPrompt(ctx context.Context, ancestor string) (string, error)
	CachedDiffPrompt(ctx context.Context) (string, error)
	PRDescriptionPrompt(ctx context.Context, ancestor string) (string, error)
	CommitMessagePrompt(ctx context.Context, numCommits int) (string, error)
}

// Server is the MCP facade over the formatting service.
type Server struct {
	service Service
	config  Config
	log     logze.Logger

	mcp  *server.MCPServer
	http *server.StreamableHTTPServer
}

// New creates the MCP server and registers all prompts and tools.
func New(cfg Config, version string, service Service) (*Server, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	s := &Server{
		service: service,
		config:  cfg,
		log:     logze.With("component", "server"),
	}

	s.mcp = server.NewMCPServer(
		cfg.Name,
		version,
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Prompts and tools for diff summaries, commit history and PR descriptions of a local git repository."),
	)

	s.registerPrompts()
	s.registerTools()

	return s, nil
}

// Start serves MCP requests until the context is done. With an address
// configured it listens over streamable HTTP, otherwise it speaks
// stdio, which is why all logging goes to stderr.
func (s *Server) Start(ctx context.Context) error {
	if s.config.Address != "" {
		s.log.Info("starting streamable HTTP server", "address", s.config.Address)
		s.http = server.NewStreamableHTTPServer(s.mcp)
		return s.http.Start(s.config.Address)
	}
	s.log.Info("starting stdio server")
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// Stop shuts down the HTTP listener if one is running. The stdio
// transport stops together with its context.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
