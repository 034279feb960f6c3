package model

import "time"

// Format is the output format for diff and history rendering
type Format string

// Supported output formats
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// IsValid reports whether the format is one of the supported values
func (f Format) IsValid() bool {
	return f == FormatJSON || f == FormatText
}

// FileDiff represents changes in a single file
type FileDiff struct {
	OldPath   string
	NewPath   string
	Diff      string
	IsNew     bool
	IsDeleted bool
	IsRenamed bool
	IsBinary  bool
}

// Path returns the path the file is known by after the change,
// falling back to the old path for deleted files.
func (f FileDiff) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}

// Commit represents a git commit
type Commit struct {
	SHA       string
	Subject   string
	Body      string
	Author    string
	Timestamp time.Time
}

// Message returns the full commit message (subject plus body).
func (c Commit) Message() string {
	if c.Body == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + c.Body
}
