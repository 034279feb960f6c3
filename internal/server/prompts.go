package server

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/maxbolgarin/erro"
)

const (
	ancestorDescription = "The ancestor commit hash or branch name"

	// defaultCommitCount matches the num_commits default announced in
	// the generate-commit-message prompt description.
	defaultCommitCount = 5
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("generate-pr-desc",
		mcp.WithPromptDescription("Generate PR Description based on the diff between the HEAD and the ancestor branch or commit"),
		mcp.WithArgument("ancestor", mcp.ArgumentDescription(ancestorDescription), mcp.RequiredArgument()),
	), s.handleGeneratePRDesc)

	s.mcp.AddPrompt(mcp.NewPrompt("git-diff",
		mcp.WithPromptDescription("Generate a diff between the HEAD and the ancestor branch or commit"),
		mcp.WithArgument("ancestor", mcp.ArgumentDescription(ancestorDescription), mcp.RequiredArgument()),
	), s.handleGitDiff)

	s.mcp.AddPrompt(mcp.NewPrompt("git-cached-diff",
		mcp.WithPromptDescription("Generate a diff between the files in the staging area (the index) and the HEAD"),
	), s.handleGitCachedDiff)

	s.mcp.AddPrompt(mcp.NewPrompt("git-commit-messages",
		mcp.WithPromptDescription("Get commit messages between the ancestor and HEAD"),
		mcp.WithArgument("ancestor", mcp.ArgumentDescription(ancestorDescription), mcp.RequiredArgument()),
	), s.handleGitCommitMessages)

	s.mcp.AddPrompt(mcp.NewPrompt("generate-commit-message",
		mcp.WithPromptDescription("Generate a commit message for the staged changes, following the style of recent commits"),
		mcp.WithArgument("num_commits", mcp.ArgumentDescription("How many recent commit messages to use as a style reference (default 5)")),
	), s.handleGenerateCommitMessage)
}

func (s *Server) handleGeneratePRDesc(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ancestor := request.Params.Arguments["ancestor"]
	if ancestor == "" {
		return nil, erro.New("ancestor argument required")
	}
	text, err := s.service.PRDescriptionPrompt(ctx, ancestor)
	if err != nil {
		return nil, erro.Wrap(err, "generate-pr-desc")
	}
	return promptResult(text), nil
}

func (s *Server) handleGitDiff(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ancestor := request.Params.Arguments["ancestor"]
	if ancestor == "" {
		return nil, erro.New("ancestor argument required")
	}
	text, err := s.service.DiffPrompt(ctx, ancestor)
	if err != nil {
		return nil, erro.Wrap(err, "git-diff")
	}
	return promptResult(text), nil
}

func (s *Server) handleGitCachedDiff(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text, err := s.service.CachedDiffPrompt(ctx)
	if err != nil {
		return nil, erro.Wrap(err, "git-cached-diff")
	}
	return promptResult(text), nil
}

func (s *Server) handleGitCommitMessages(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ancestor := request.Params.Arguments["ancestor"]
	if ancestor == "" {
		return nil, erro.New("ancestor argument required")
	}
	text, err := s.service.CommitMessages(ctx, ancestor)
	if err != nil {
		return nil, erro.Wrap(err, "git-commit-messages")
	}
	return promptResult(text), nil
}

func (s *Server) handleGenerateCommitMessage(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	numCommits := defaultCommitCount
	if raw := request.Params.Arguments["num_commits"]; raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, erro.New("num_commits must be an integer, got %q", raw)
		}
		numCommits = parsed
	}
	text, err := s.service.CommitMessagePrompt(ctx, numCommits)
	if err != nil {
		return nil, erro.Wrap(err, "generate-commit-message")
	}
	return promptResult(text), nil
}

func promptResult(text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult("", []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}
