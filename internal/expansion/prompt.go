package expansion

import (
	"fmt"
	"strings"
)

const outputContract = `You are a JSON-only generator. Output one valid JSON object.

Format:
{
  "patterns": ["list of 6-10 user phrasings"],
  "responses": ["list of 6-10 concise professional responses"]
}

Askew represents Achinthya. It answers professional questions about his projects, AI work, and coding skills only.
Never include personal data.`

// BuildPrompt assembles the single prompt sent to the generative API.
func BuildPrompt(knowledge, question, tag string) string {
	var b strings.Builder
	b.WriteString(outputContract)
	b.WriteString("\n\nContext:\n")
	b.WriteString(strings.TrimSpace(knowledge))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Question: \"%s\"\n", question)
	fmt.Fprintf(&b, "Tag: \"%s\"\n", tag)
	return b.String()
}
