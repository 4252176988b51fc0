package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/askewbot/askew-trainer/internal/journal"
)

// FormatHistory renders journal runs as a table, newest first.
func FormatHistory(runs []*journal.Run, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No expansion runs recorded yet.") + "\n"
	}

	table := make([][]string, 0, len(runs))
	for _, r := range runs {
		change := fmt.Sprintf("+%dp +%dr", r.PatternsAdded, r.ResponsesAdded)
		if r.CreatedTag {
			change += " " + StyleOK.Render("new")
		}
		table = append(table, []string{
			HumanTimestampFrom(r.CreatedAt, now),
			r.Tag,
			sourceBadge(r.Source),
			change,
			truncate(r.Question, 40),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Expansion history"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"WHEN", "TAG", "SOURCE", "CHANGE", "QUESTION"}, table))
	return b.String()
}

func sourceBadge(s journal.Source) string {
	switch s {
	case journal.SourceAPI:
		return StyleGemini.Render("gemini")
	case journal.SourceManual:
		return StyleNote.Render("manual")
	default:
		return StyleMuted.Render(string(s))
	}
}

// HumanTimestampFrom returns a human-friendly relative timestamp.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Local().Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Local().Format("Jan 2, 2006 15:04")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
