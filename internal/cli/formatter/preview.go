package formatter

import (
	"fmt"
	"strings"

	"github.com/askewbot/askew-trainer/internal/intents"
)

// FormatPreview renders the full expansion as indented JSON under a header.
func FormatPreview(exp intents.Expansion) string {
	data, err := intents.MarshalExpansion(exp)
	if err != nil {
		return Warn(fmt.Sprintf("could not render preview: %v", err)) + "\n"
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Header("Preview"))
	b.WriteString("\n")
	b.Write(data)
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d patterns, %d responses", len(exp.Patterns), len(exp.Responses))))
	b.WriteString("\n")
	return b.String()
}

// FormatMergeResult describes what a merge changed.
func FormatMergeResult(res intents.MergeResult) string {
	if res.Created {
		return Success(fmt.Sprintf("Created new tag '%s'", Bold(res.Tag)))
	}
	return Success(fmt.Sprintf("Added %d patterns and %d responses to existing tag '%s'",
		res.PatternsAdded, res.ResponsesAdded, Bold(res.Tag)))
}

// FormatSaved reports the written dataset and its backup, if any.
func FormatSaved(path, backupPath string) string {
	if backupPath == "" {
		return Success(fmt.Sprintf("Updated %s %s", path, Dim("(no prior file to back up)")))
	}
	return Success(fmt.Sprintf("Updated %s (backup saved: %s)", path, backupPath))
}
