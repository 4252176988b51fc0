package intents

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Intent is a tagged group of user phrasings and candidate bot replies.
type Intent struct {
	Tag        string   `json:"tag"`
	Patterns   []string `json:"patterns"`
	Responses  []string `json:"responses"`
	ContextSet string   `json:"context_set"`
}

// Dataset is the document persisted in intents.json.
type Dataset struct {
	Intents []Intent `json:"intents"`
}

// Expansion holds newly produced patterns and responses for one question,
// prior to merging.
type Expansion struct {
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{Intents: []Intent{}}
}

// Find returns the intent with the given tag, or nil. Tags match exactly.
func (d *Dataset) Find(tag string) *Intent {
	for i := range d.Intents {
		if d.Intents[i].Tag == tag {
			return &d.Intents[i]
		}
	}
	return nil
}

// Normalize replaces nil slices with empty ones so the document never
// serializes a list as null.
func (d *Dataset) Normalize() {
	if d.Intents == nil {
		d.Intents = []Intent{}
	}
	for i := range d.Intents {
		if d.Intents[i].Patterns == nil {
			d.Intents[i].Patterns = []string{}
		}
		if d.Intents[i].Responses == nil {
			d.Intents[i].Responses = []string{}
		}
	}
}

// Marshal serializes the dataset with 2-space indentation. Non-ASCII and
// HTML-significant characters are written as-is.
func Marshal(d *Dataset) ([]byte, error) {
	d.Normalize()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding dataset: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalExpansion renders an expansion the same way the dataset is written,
// for previews.
func MarshalExpansion(e Expansion) ([]byte, error) {
	if e.Patterns == nil {
		e.Patterns = []string{}
	}
	if e.Responses == nil {
		e.Responses = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("encoding expansion: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
