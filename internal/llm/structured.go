package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed value after JSON extraction.
type SchemaValidator[T any] func(T) error

// ExtractJSON recovers a JSON object of type T from raw model output.
//
// Candidates are tried in order: the whole trimmed reply, the first balanced
// {...} block after stripping markdown fences, and the span from the first
// '{' to the last '}'. The first candidate that decodes wins.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	result, err := decodeFirst[T](jsonCandidates(raw))
	if err != nil {
		return zero, err
	}
	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

func decodeFirst[T any](candidates []string) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	var lastErr error
	for _, c := range candidates {
		var result T
		if err := json.Unmarshal([]byte(c), &result); err != nil {
			lastErr = err
			continue
		}
		return result, nil
	}
	return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, lastErr)
}

func jsonCandidates(raw string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		add(trimmed)
	}
	add(extractJSONBlock(stripCodeFences(raw)))
	if start, end := strings.IndexByte(raw, '{'), strings.LastIndexByte(raw, '}'); start >= 0 && end > start {
		add(raw[start : end+1])
	}
	return out
}

// stripCodeFences removes markdown fence lines (```json, ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// extractJSONBlock finds the first balanced { ... } block in the text.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
