package git

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maxbolgarin/gitprompt/internal/model"
)

// Excluded reports whether path matches any of the glob patterns.
//
// A pattern without "**" is matched against the trailing components of
// the path, so "uv.lock" excludes "sub/dir/uv.lock" and "dist/*"
// excludes "dist/bundle.js". Patterns containing "**" span directory
// boundaries. An empty path never matches.
func Excluded(path string, patterns []string) bool {
	if path == "" {
		return false
	}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

func matchPattern(path, pattern string) bool {
	if strings.Contains(pattern, "**") {
		ok, err := doublestar.Match(pattern, path)
		return err == nil && ok
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) > len(pathParts) {
		return false
	}

	tail := pathParts[len(pathParts)-len(patternParts):]
	for i := range patternParts {
		ok, err := filepath.Match(patternParts[i], tail[i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// ValidPattern reports whether pattern is a syntactically valid glob.
func ValidPattern(pattern string) bool {
	return doublestar.ValidatePattern(pattern)
}

// Filter drops files whose old or new path matches any exclude pattern.
// A rename is dropped when either side of it matches. The input order
// is preserved.
func Filter(files []model.FileDiff, patterns []string) []model.FileDiff {
	if len(patterns) == 0 {
		return files
	}
	out := make([]model.FileDiff, 0, len(files))
	for _, f := range files {
		if Excluded(f.OldPath, patterns) || Excluded(f.NewPath, patterns) {
			continue
		}
		out = append(out, f)
	}
	return out
}
