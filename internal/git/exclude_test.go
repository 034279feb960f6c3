package git

import (
	"testing"

	"github.com/maxbolgarin/gitprompt/internal/model"
	"github.com/stretchr/testify/require"
)

func TestExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{"extension match", "error.log", []string{"*.log"}, true},
		{"no match", "main.go", []string{"*.log"}, false},
		{"filename matches nested file", "a/b/c/target.txt", []string{"target.txt"}, true},
		{"recursive pattern at root", "secret.txt", []string{"**/secret.txt"}, true},
		{"recursive pattern one level", "subdir/secret.txt", []string{"**/secret.txt"}, true},
		{"recursive pattern deep", "deep/nested/secret.txt", []string{"**/secret.txt"}, true},
		{"recursive pattern no match", "not_secret.txt", []string{"**/secret.txt"}, false},
		{"empty path never matches", "", []string{"*.txt"}, false},
		{"exact filename", "config.json", []string{"config.json"}, true},
		{"exact filename nested", "src/config.json", []string{"config.json"}, true},
		{"any of multiple patterns", "file.tmp", []string{"*.tmp", "dist/*"}, true},
		{"directory pattern", "dist/bundle.js", []string{"*.tmp", "dist/*"}, true},
		{"none of multiple patterns", "src/app.js", []string{"*.tmp", "dist/*"}, false},
		{"lockfile", "uv.lock", []string{"uv.lock"}, true},
		{"empty pattern ignored", "a.txt", []string{""}, false},
		{"pattern longer than path", "a.txt", []string{"dir/sub/a.txt"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Excluded(tt.path, tt.patterns))
		})
	}
}

func TestFilter(t *testing.T) {
	files := []model.FileDiff{
		{OldPath: "a.txt", NewPath: "a.txt"},
		{OldPath: "uv.lock", NewPath: "uv.lock"},
		{OldPath: "src/b.go", NewPath: "src/b.go"},
	}

	got := Filter(files, []string{"uv.lock"})
	require.Len(t, got, 2)
	require.Equal(t, "a.txt", got[0].NewPath)
	require.Equal(t, "src/b.go", got[1].NewPath)
}

func TestFilterRename(t *testing.T) {
	files := []model.FileDiff{
		{OldPath: "legacy.lock", NewPath: "kept.txt", IsRenamed: true},
		{OldPath: "kept.go", NewPath: "generated.pb.go", IsRenamed: true},
		{OldPath: "c.go", NewPath: "c.go"},
	}

	// a rename is dropped when either side matches
	got := Filter(files, []string{"legacy.lock", "*.pb.go"})
	require.Len(t, got, 1)
	require.Equal(t, "c.go", got[0].NewPath)
}

func TestFilterNoPatterns(t *testing.T) {
	files := []model.FileDiff{{NewPath: "a.txt"}}
	require.Equal(t, files, Filter(files, nil))
}

func TestValidPattern(t *testing.T) {
	require.True(t, ValidPattern("*.log"))
	require.True(t, ValidPattern("**/secret.txt"))
	require.False(t, ValidPattern("[unclosed"))
}
