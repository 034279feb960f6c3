package git

import "errors"

var (
	ErrNotRepository   = errors.New("not a git repository")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrGitCommand      = errors.New("git command failed")
)
