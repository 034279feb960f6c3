package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/maxbolgarin/erro"
)

// runner executes a git subcommand in a repository directory and
// returns its stdout. Implementations must not retry.
type runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execRunner shells out to the local git executable.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", erro.Wrap(ErrGitCommand, "git "+args[0]+": "+msg)
	}
	return stdout.String(), nil
}
