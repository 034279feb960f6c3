// Package app wires configuration, the git client and prompt assembly
// into the operations exposed over MCP and on the command line.
package app

import (
	"context"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gitprompt/internal/config"
	"github.com/maxbolgarin/gitprompt/internal/format"
	"github.com/maxbolgarin/gitprompt/internal/git"
	"github.com/maxbolgarin/gitprompt/internal/model"
	"github.com/maxbolgarin/gitprompt/internal/prompts"
	"github.com/maxbolgarin/logze/v2"
)

// gitClient is the part of the git package the app depends on.
type gitClient interface {
	Diff(ctx context.Context, ancestor string) ([]model.FileDiff, error)
	CachedDiff(ctx context.Context) ([]model.FileDiff, error)
	History(ctx context.Context, ancestor string, max int) ([]model.Commit, error)
}

// App holds the formatting operations behind every prompt and tool.
// One request means at most one git invocation per data source, no
// retries and no state between requests.
type App struct {
	cfg config.Config
	git gitClient
	log logze.Logger
}

// New validates the configuration and binds the app to a repository.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "invalid config")
	}

	client, err := git.New(ctx, cfg.Repository)
	if err != nil {
		return nil, erro.Wrap(err, "open repository")
	}

	return &App{
		cfg: cfg,
		git: client,
		log: logze.With("component", "app"),
	}, nil
}

// Config returns the effective configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Diff returns the formatted diff between the ancestor ref and HEAD,
// with excluded files dropped.
func (a *App) Diff(ctx context.Context, ancestor string) (string, error) {
	files, err := a.git.Diff(ctx, ancestor)
	if err != nil {
		return "", err
	}
	a.log.Debug("got diff", "ancestor", ancestor, "files", len(files))
	return format.Diff(git.Filter(files, a.cfg.Excludes), a.cfg.Format)
}

// CachedDiff returns the formatted staged diff (index against HEAD).
func (a *App) CachedDiff(ctx context.Context) (string, error) {
	files, err := a.git.CachedDiff(ctx)
	if err != nil {
		return "", err
	}
	return format.Diff(git.Filter(files, a.cfg.Excludes), a.cfg.Format)
}

// CommitMessages returns the formatted commit history between the
// ancestor ref and HEAD, newest first.
func (a *App) CommitMessages(ctx context.Context, ancestor string) (string, error) {
	if ancestor == "" {
		return "", erro.Wrap(git.ErrInvalidArgument, "ancestor is required")
	}
	commits, err := a.git.History(ctx, ancestor, a.cfg.MaxHistory)
	if err != nil {
		return "", err
	}
	return format.History(commits, ancestor, a.cfg.Format)
}

// DiffPrompt is Diff wrapped with its explanatory trailer.
func (a *App) DiffPrompt(ctx context.Context, ancestor string) (string, error) {
	content, err := a.Diff(ctx, ancestor)
	if err != nil {
		return "", err
	}
	return prompts.Diff(content, ancestor, a.cfg.Format), nil
}

// CachedDiffPrompt is CachedDiff wrapped with its explanatory trailer.
func (a *App) CachedDiffPrompt(ctx context.Context) (string, error) {
	content, err := a.CachedDiff(ctx)
	if err != nil {
		return "", err
	}
	return prompts.CachedDiff(content, a.cfg.Format), nil
}

// PRDescriptionPrompt combines commit history and diff against the
// ancestor ref and appends the PR description instructions.
func (a *App) PRDescriptionPrompt(ctx context.Context, ancestor string) (string, error) {
	if ancestor == "" {
		return "", erro.Wrap(git.ErrInvalidArgument, "ancestor is required")
	}

	commits, err := a.git.History(ctx, ancestor, a.cfg.MaxHistory)
	if err != nil {
		return "", err
	}
	files, err := a.git.Diff(ctx, ancestor)
	if err != nil {
		return "", err
	}

	content, err := format.Combined(commits, git.Filter(files, a.cfg.Excludes), ancestor, a.cfg.Format)
	if err != nil {
		return "", err
	}
	return prompts.PRDescription(content, ancestor, a.cfg.Format), nil
}

// CommitMessagePrompt combines the staged diff with up to numCommits
// recent commit messages and appends the commit message instructions.
// numCommits == 0 skips history retrieval entirely, a negative value
// is rejected before any git invocation.
func (a *App) CommitMessagePrompt(ctx context.Context, numCommits int) (string, error) {
	commits, err := a.git.History(ctx, "", numCommits)
	if err != nil {
		return "", err
	}

	files, err := a.git.CachedDiff(ctx)
	if err != nil {
		return "", err
	}
	diffContent, err := format.Diff(git.Filter(files, a.cfg.Excludes), a.cfg.Format)
	if err != nil {
		return "", err
	}

	var historyContent string
	if len(commits) > 0 {
		historyContent, err = format.History(commits, "", a.cfg.Format)
		if err != nil {
			return "", err
		}
	}
	return prompts.CommitMessage(diffContent, historyContent, a.cfg.Format), nil
}
