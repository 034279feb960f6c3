package format

import (
	encjson "encoding/json"
	"testing"
	"time"

	"github.com/maxbolgarin/gitprompt/internal/model"
	"github.com/stretchr/testify/require"
)

var testCommits = []model.Commit{
	{
		SHA:       "1111111111111111111111111111111111111111",
		Subject:   "Add feature",
		Body:      "Longer body",
		Author:    "Alice <alice@example.com>",
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	},
	{
		SHA:       "2222222222222222222222222222222222222222",
		Subject:   "Initial commit",
		Author:    "Bob <bob@example.com>",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	},
}

func TestDiffJSON(t *testing.T) {
	files := []model.FileDiff{
		{OldPath: "a.txt", NewPath: "a.txt", Diff: "diff --git a/a.txt b/a.txt\n+new\n"},
		{OldPath: "b.go", NewPath: "b.go", Diff: "diff --git a/b.go b/b.go\n-old\n"},
	}

	out, err := Diff(files, model.FormatJSON)
	require.NoError(t, err)

	// round-trip through the standard decoder, one entry per file in order
	var entries []DiffEntry
	require.NoError(t, encjson.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "a.txt", entries[0].FilePath)
	require.Equal(t, "b.go", entries[1].FilePath)
	require.Contains(t, entries[0].ChangeSummary, "+new")
}

func TestDiffJSONEmpty(t *testing.T) {
	out, err := Diff(nil, model.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "[]", out)
}

func TestDiffTextEmpty(t *testing.T) {
	out, err := Diff(nil, model.FormatText)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDiffText(t *testing.T) {
	files := []model.FileDiff{
		{OldPath: "a.txt", NewPath: "a.txt", Diff: "+new line\n"},
	}

	out, err := Diff(files, model.FormatText)
	require.NoError(t, err)
	require.Contains(t, out, "File: a.txt -> a.txt")
	require.Contains(t, out, "+new line")
	require.Contains(t, out, "--------------------------------------------------")
	require.Contains(t, out, "==================================================")
}

func TestDiffTextNewAndDeleted(t *testing.T) {
	files := []model.FileDiff{
		{OldPath: "new.go", NewPath: "new.go", IsNew: true, Diff: "+package main\n"},
		{OldPath: "gone.txt", NewPath: "gone.txt", IsDeleted: true, Diff: "-old\n"},
	}

	out, err := Diff(files, model.FormatText)
	require.NoError(t, err)
	require.Contains(t, out, "File: New Addition -> new.go")
	require.Contains(t, out, "File: gone.txt -> Deleted")
}

func TestDiffJSONRename(t *testing.T) {
	files := []model.FileDiff{
		{OldPath: "old.txt", NewPath: "renamed.txt", IsRenamed: true, Diff: "similarity index 100%\n"},
	}

	out, err := Diff(files, model.FormatJSON)
	require.NoError(t, err)

	var entries []DiffEntry
	require.NoError(t, encjson.Unmarshal([]byte(out), &entries))
	require.Equal(t, "renamed.txt", entries[0].FilePath)
	require.Equal(t, "old.txt", entries[0].OldPath)
}

func TestDiffUnsupportedFormat(t *testing.T) {
	_, err := Diff(nil, model.Format("yaml"))
	require.Error(t, err)
}

func TestHistoryText(t *testing.T) {
	out, err := History(testCommits, "main", model.FormatText)
	require.NoError(t, err)
	require.Contains(t, out, "Commit messages between main and HEAD:")
	require.Contains(t, out, "1111111111111111111111111111111111111111 by Alice <alice@example.com> at 2025-01-02T03:04:05Z")
	require.Contains(t, out, "Add feature\n\nLonger body")
	require.Contains(t, out, "Initial commit")
}

func TestHistoryTextEmpty(t *testing.T) {
	out, err := History(nil, "main", model.FormatText)
	require.NoError(t, err)
	require.Equal(t, "No commits found between main and HEAD.", out)
}

func TestHistoryJSON(t *testing.T) {
	out, err := History(testCommits, "main", model.FormatJSON)
	require.NoError(t, err)

	var entries []HistoryEntry
	require.NoError(t, encjson.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "Add feature", entries[0].Subject)
	require.Equal(t, "2025-01-01T00:00:00Z", entries[1].Date)
}

func TestHistoryJSONEmpty(t *testing.T) {
	out, err := History(nil, "main", model.FormatJSON)
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, encjson.Unmarshal([]byte(out), &payload))
	require.Contains(t, payload["error_message"], "No commits found")
}

func TestCombinedJSON(t *testing.T) {
	files := []model.FileDiff{{OldPath: "a.txt", NewPath: "a.txt", Diff: "+x\n"}}

	out, err := Combined(testCommits, files, "main", model.FormatJSON)
	require.NoError(t, err)

	var payload struct {
		CommitHistory []HistoryEntry `json:"commit_history"`
		Diff          []DiffEntry    `json:"diff"`
	}
	require.NoError(t, encjson.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.CommitHistory, 2)
	require.Len(t, payload.Diff, 1)
}

func TestCombinedText(t *testing.T) {
	files := []model.FileDiff{{OldPath: "a.txt", NewPath: "a.txt", Diff: "+x\n"}}

	out, err := Combined(testCommits, files, "main", model.FormatText)
	require.NoError(t, err)
	require.Contains(t, out, "Commit messages between main and HEAD:")
	require.Contains(t, out, "File: a.txt -> a.txt")
}
