// Package format renders filtered diff and history records as JSON
// documents or plain text blocks. Rendering never fails on empty input:
// an empty diff is an empty JSON array or an empty string.
package format

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitprompt/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	fileRuleWidth        = 50
	historyRule          = "----------"
	deletedLabel         = "Deleted"
	newEntryLabel        = "New Addition"
	jsonIndent           = "  "
	errUnsupportedFormat = "unsupported output format"
)

// DiffEntry is one changed file in JSON output.
type DiffEntry struct {
	FilePath      string `json:"file_path"`
	OldPath       string `json:"old_path,omitempty"`
	ChangeSummary string `json:"change_summary"`
}

// HistoryEntry is one commit in JSON output.
type HistoryEntry struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}

// Diff renders per-file change records in the requested format,
// preserving the order git reported them in.
func Diff(files []model.FileDiff, f model.Format) (string, error) {
	switch f {
	case model.FormatJSON:
		b, err := json.MarshalIndent(DiffEntries(files), "", jsonIndent)
		if err != nil {
			return "", errm.Wrap(err, "marshal diff")
		}
		return string(b), nil
	case model.FormatText:
		return diffText(files), nil
	}
	return "", errm.New(errUnsupportedFormat)
}

// DiffEntries converts change records to their JSON shape.
func DiffEntries(files []model.FileDiff) []DiffEntry {
	entries := make([]DiffEntry, 0, len(files))
	for _, f := range files {
		e := DiffEntry{FilePath: f.Path(), ChangeSummary: f.Diff}
		if f.IsRenamed {
			e.OldPath = f.OldPath
		}
		entries = append(entries, e)
	}
	return entries
}

func diffText(files []model.FileDiff) string {
	if len(files) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(files))
	for _, f := range files {
		oldPath := f.OldPath
		if f.IsNew || oldPath == "" {
			oldPath = newEntryLabel
		}
		newPath := f.NewPath
		if f.IsDeleted || newPath == "" {
			newPath = deletedLabel
		}

		var b strings.Builder
		b.WriteString("File: " + oldPath + " -> " + newPath + "\n")
		b.WriteString(strings.Repeat("-", fileRuleWidth) + "\n")
		b.WriteString(f.Diff)
		if !strings.HasSuffix(f.Diff, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("=", fileRuleWidth) + "\n")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// History renders commits in the requested format. The ancestor names
// the base of the walk in headers and may be empty for plain recent
// history.
func History(commits []model.Commit, ancestor string, f model.Format) (string, error) {
	switch f {
	case model.FormatJSON:
		if len(commits) == 0 {
			b, err := json.Marshal(map[string]string{"error_message": noCommitsMessage(ancestor)})
			if err != nil {
				return "", errm.Wrap(err, "marshal history")
			}
			return string(b), nil
		}
		b, err := json.MarshalIndent(HistoryEntries(commits), "", jsonIndent)
		if err != nil {
			return "", errm.Wrap(err, "marshal history")
		}
		return string(b), nil
	case model.FormatText:
		return historyText(commits, ancestor), nil
	}
	return "", errm.New(errUnsupportedFormat)
}

// HistoryEntries converts commits to their JSON shape.
func HistoryEntries(commits []model.Commit) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(commits))
	for _, c := range commits {
		entries = append(entries, HistoryEntry{
			Hash:    c.SHA,
			Author:  c.Author,
			Date:    c.Timestamp.UTC().Format(time.RFC3339),
			Subject: c.Subject,
			Body:    c.Body,
		})
	}
	return entries
}

func historyText(commits []model.Commit, ancestor string) string {
	if len(commits) == 0 {
		return noCommitsMessage(ancestor)
	}

	messages := make([]string, 0, len(commits))
	for _, c := range commits {
		messages = append(messages,
			c.SHA+" by "+c.Author+" at "+c.Timestamp.UTC().Format(time.RFC3339)+"\n\n"+c.Message())
	}

	header := "Most recent commit messages:"
	if ancestor != "" {
		header = "Commit messages between " + ancestor + " and HEAD:"
	}
	return header + "\n" + historyRule + "\n\n" + strings.Join(messages, "\n\n"+historyRule+"\n\n")
}

func noCommitsMessage(ancestor string) string {
	if ancestor == "" {
		return "No commits found."
	}
	return "No commits found between " + ancestor + " and HEAD."
}

// Combined renders commit history and diff together, used by the PR
// description prompt.
func Combined(commits []model.Commit, files []model.FileDiff, ancestor string, f model.Format) (string, error) {
	switch f {
	case model.FormatJSON:
		payload := struct {
			CommitHistory []HistoryEntry `json:"commit_history"`
			Diff          []DiffEntry    `json:"diff"`
		}{
			CommitHistory: HistoryEntries(commits),
			Diff:          DiffEntries(files),
		}
		b, err := json.MarshalIndent(payload, "", jsonIndent)
		if err != nil {
			return "", errm.Wrap(err, "marshal combined output")
		}
		return string(b), nil
	case model.FormatText:
		return historyText(commits, ancestor) + "\n\n" + diffText(files), nil
	}
	return "", errm.New(errUnsupportedFormat)
}
