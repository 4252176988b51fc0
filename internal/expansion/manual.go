package expansion

import (
	"fmt"
	"io"
	"strings"

	"github.com/askewbot/askew-trainer/internal/intents"
)

// LinePrompter shows a prompt and returns the next line of input.
type LinePrompter interface {
	Prompt(label string) (string, error)
}

// ExpandManually collects patterns then responses, each list ending at a
// blank line. Read errors, including EOF, end the current list. Empty lists
// are accepted.
func ExpandManually(p LinePrompter, out io.Writer) intents.Expansion {
	fmt.Fprintln(out, "Enter patterns (empty line to finish):")
	patterns := readList(p)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter responses (empty line to finish):")
	responses := readList(p)

	return intents.Expansion{Patterns: patterns, Responses: responses}
}

func readList(p LinePrompter) []string {
	items := []string{}
	for {
		line, err := p.Prompt("> ")
		line = strings.TrimSpace(line)
		if line == "" {
			return items
		}
		items = append(items, line)
		if err != nil {
			return items
		}
	}
}
