package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tools mirror the prompts but return the bare formatted output
// without any instructional boilerplate.
func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("git-diff",
		mcp.WithDescription("Get the diff between the HEAD and the ancestor branch or commit"),
		mcp.WithString("ancestor", mcp.Required(), mcp.Description(ancestorDescription)),
	), s.handleGitDiffTool)

	s.mcp.AddTool(mcp.NewTool("git-cached-diff",
		mcp.WithDescription("Get the diff between the files in the staging area (the index) and the HEAD"),
	), s.handleGitCachedDiffTool)

	s.mcp.AddTool(mcp.NewTool("git-commit-messages",
		mcp.WithDescription("Get commit messages between the ancestor and HEAD"),
		mcp.WithString("ancestor", mcp.Required(), mcp.Description(ancestorDescription)),
	), s.handleGitCommitMessagesTool)
}

func (s *Server) handleGitDiffTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ancestor, err := request.RequireString("ancestor")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.service.Diff(ctx, ancestor)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleGitCachedDiffTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.service.CachedDiff(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleGitCommitMessagesTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ancestor, err := request.RequireString("ancestor")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.service.CommitMessages(ctx, ancestor)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
