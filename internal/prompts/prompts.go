// Package prompts wraps formatted git output in the fixed instructional
// boilerplate each command needs. Pure string assembly, no state.
package prompts

import (
	"github.com/maxbolgarin/gitprompt/internal/model"
)

// FormatName is the human-readable name of an output format, used in
// the trailer sentences of prompts.
func FormatName(f model.Format) string {
	if f == model.FormatJSON {
		return "the JSON format"
	}
	return "plain text"
}

// Diff appends the trailer describing what the diff content is.
func Diff(content, ancestor string, f model.Format) string {
	return content + "\n\nAbove is the diff results between HEAD and " + ancestor + " in " + FormatName(f) + ".\n"
}

// CachedDiff appends the trailer for a staged diff.
func CachedDiff(content string, f model.Format) string {
	return content + "\n\nAbove is the staged changes in " + FormatName(f) + "."
}

// PRDescription wraps combined history and diff content with the
// instructions for writing a pull request description.
func PRDescription(content, ancestor string, f model.Format) string {
	return content +
		"\n\nAbove is the commit history and diff results between HEAD and " + ancestor + " in " + FormatName(f) + ".\n" +
		prDescriptionInstructions
}

// CommitMessage wraps a staged diff, and optionally recent commit
// history, with the instructions for writing a commit message.
func CommitMessage(diffContent, historyContent string, f model.Format) string {
	out := diffContent + "\n\nAbove is the staged changes in " + FormatName(f) + ".\n"
	if historyContent != "" {
		out += "\n" + commitMessageHistoryHeader + "\n\n" + historyContent + "\n"
	}
	return out + commitMessageInstructions
}
