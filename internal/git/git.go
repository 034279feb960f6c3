package git

import (
	"context"
	"strconv"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gitprompt/internal/model"
	"github.com/maxbolgarin/logze/v2"
)

// logFormat renders one commit per record with unit-separator delimited
// fields: sha, author, author date (ISO 8601), subject, body.
const logFormat = "%H%x1f%an <%ae>%x1f%aI%x1f%s%x1f%b%x1e"

// Client runs git commands against a single repository.
// Every operation spawns at most one git process and blocks until it exits.
type Client struct {
	dir string
	run runner
	log logze.Logger
}

// New creates a client bound to repository and verifies that the path
// actually contains git metadata. A path without a .git directory is a
// configuration error, not something to retry.
func New(ctx context.Context, repository string) (*Client, error) {
	c := &Client{
		dir: repository,
		run: execRunner{},
		log: logze.With("component", "git"),
	}
	if _, err := c.run.Run(ctx, c.dir, "rev-parse", "--git-dir"); err != nil {
		return nil, erro.Wrap(ErrNotRepository, repository)
	}
	c.log.Debug("opened repository", "dir", repository)
	return c, nil
}

// Diff returns per-file change records between the ancestor ref and HEAD,
// in the order git reports them.
func (c *Client) Diff(ctx context.Context, ancestor string) ([]model.FileDiff, error) {
	if ancestor == "" {
		return nil, erro.Wrap(ErrInvalidArgument, "ancestor is required")
	}
	out, err := c.run.Run(ctx, c.dir, "diff", ancestor, "HEAD")
	if err != nil {
		return nil, err
	}
	return parseDiff(out), nil
}

// CachedDiff returns per-file change records between HEAD and the index.
func (c *Client) CachedDiff(ctx context.Context) ([]model.FileDiff, error) {
	out, err := c.run.Run(ctx, c.dir, "diff", "--cached")
	if err != nil {
		return nil, err
	}
	return parseDiff(out), nil
}

// History returns up to max commits, newest first. A non-empty ancestor
// limits the walk to ancestor..HEAD, otherwise it starts from HEAD.
// max == 0 returns an empty history without spawning git, a negative
// max is rejected before any invocation.
func (c *Client) History(ctx context.Context, ancestor string, max int) ([]model.Commit, error) {
	if max < 0 {
		return nil, erro.Wrap(ErrInvalidArgument, "commit count must not be negative")
	}
	if max == 0 {
		return nil, nil
	}

	args := []string{"log", "-n", strconv.Itoa(max), "--pretty=format:" + logFormat}
	if ancestor != "" {
		args = append(args, ancestor+"..HEAD")
	} else {
		args = append(args, "HEAD")
	}

	out, err := c.run.Run(ctx, c.dir, args...)
	if err != nil {
		return nil, err
	}
	return parseLog(out), nil
}
