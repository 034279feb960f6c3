package git

import (
	"strconv"
	"strings"
	"time"

	"github.com/maxbolgarin/gitprompt/internal/model"
)

// parseDiff splits raw `git diff` output into per-file change records.
// It only looks at file boundaries and metadata lines, hunk content is
// carried through verbatim.
func parseDiff(out string) []model.FileDiff {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}

	var (
		files []model.FileDiff
		cur   *model.FileDiff
		buf   strings.Builder
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Diff = buf.String()
		files = append(files, *cur)
		cur = nil
		buf.Reset()
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			flush()
			oldPath, newPath := parseHeaderPaths(line)
			cur = &model.FileDiff{OldPath: oldPath, NewPath: newPath}
		}
		if cur == nil {
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')

		switch {
		case strings.HasPrefix(line, "new file mode"):
			cur.IsNew = true
		case strings.HasPrefix(line, "deleted file mode"):
			cur.IsDeleted = true
		case strings.HasPrefix(line, "rename from "):
			cur.OldPath = unquotePath(strings.TrimPrefix(line, "rename from "))
			cur.IsRenamed = true
		case strings.HasPrefix(line, "rename to "):
			cur.NewPath = unquotePath(strings.TrimPrefix(line, "rename to "))
			cur.IsRenamed = true
		case strings.HasPrefix(line, "Binary files "):
			cur.IsBinary = true
		case strings.HasPrefix(line, "--- "):
			if p := unquotePath(strings.TrimPrefix(line, "--- ")); p != "/dev/null" {
				cur.OldPath = strings.TrimPrefix(p, "a/")
			}
		case strings.HasPrefix(line, "+++ "):
			if p := unquotePath(strings.TrimPrefix(line, "+++ ")); p != "/dev/null" {
				cur.NewPath = strings.TrimPrefix(p, "b/")
			}
		}
	}
	flush()

	return files
}

// parseHeaderPaths extracts old and new paths from a `diff --git a/x b/y`
// line. The header is ambiguous for paths containing " b/", the exact
// paths are corrected later from the ---/+++ and rename lines.
func parseHeaderPaths(line string) (string, string) {
	rest := strings.TrimPrefix(line, "diff --git ")
	if i := strings.Index(rest, `" "`); i >= 0 {
		oldPath := unquotePath(rest[:i+1])
		newPath := unquotePath(rest[i+2:])
		return strings.TrimPrefix(oldPath, "a/"), strings.TrimPrefix(newPath, "b/")
	}
	if i := strings.Index(rest, " b/"); i >= 0 {
		return strings.TrimPrefix(rest[:i], "a/"), rest[i+3:]
	}
	return rest, rest
}

// unquotePath strips git's C-style quoting from paths with special characters.
func unquotePath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

// parseLog parses `git log` output produced with logFormat into commits,
// preserving the newest-first order git reports.
func parseLog(out string) []model.Commit {
	var commits []model.Commit
	for _, record := range strings.Split(out, "\x1e") {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}
		fields := strings.SplitN(record, "\x1f", 5)
		if len(fields) < 5 {
			continue
		}
		ts, _ := time.Parse(time.RFC3339, fields[2])
		commits = append(commits, model.Commit{
			SHA:       fields[0],
			Author:    fields[1],
			Timestamp: ts,
			Subject:   strings.TrimSpace(fields[3]),
			Body:      strings.TrimSpace(fields[4]),
		})
	}
	return commits
}
