package config

import "errors"

var (
	ErrMissingRepository     = errors.New("repository path is required")
	ErrInvalidFormat         = errors.New("invalid output format")
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")
)
