package intents

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NewTagCreatesIntent(t *testing.T) {
	ds := NewDataset()
	exp := Expansion{
		Patterns:  []string{"what can you do", "skills?"},
		Responses: []string{"Python, Node.js, AI/ML."},
	}

	res := Merge(ds, "skills", exp)

	assert.True(t, res.Created)
	assert.Equal(t, 2, res.PatternsAdded)
	assert.Equal(t, 1, res.ResponsesAdded)
	require.Len(t, ds.Intents, 1)
	assert.Equal(t, Intent{
		Tag:        "skills",
		Patterns:   []string{"what can you do", "skills?"},
		Responses:  []string{"Python, Node.js, AI/ML."},
		ContextSet: "",
	}, ds.Intents[0])
}

func TestMerge_NewTagKeepsInternalDuplicates(t *testing.T) {
	ds := NewDataset()
	Merge(ds, "greet", Expansion{Patterns: []string{"Hi", "hi"}, Responses: []string{"Hello"}})

	assert.Equal(t, []string{"Hi", "hi"}, ds.Intents[0].Patterns)
}

func TestMerge_ExistingTagSkipsCaseInsensitiveDuplicates(t *testing.T) {
	ds := &Dataset{Intents: []Intent{{
		Tag:       "greet",
		Patterns:  []string{"Hello"},
		Responses: []string{"Hi there!"},
	}}}

	res := Merge(ds, "greet", Expansion{
		Patterns:  []string{"hello", "Hey", "HEY"},
		Responses: []string{"HI THERE!", "Welcome"},
	})

	assert.False(t, res.Created)
	assert.Equal(t, 1, res.PatternsAdded)
	assert.Equal(t, 1, res.ResponsesAdded)
	assert.Equal(t, []string{"Hello", "Hey"}, ds.Intents[0].Patterns)
	assert.Equal(t, []string{"Hi there!", "Welcome"}, ds.Intents[0].Responses)
}

func TestExtendUnique(t *testing.T) {
	tests := []struct {
		name      string
		target    []string
		additions []string
		want      []string
		wantAdded int
	}{
		{"empty target", nil, []string{"a", "b"}, []string{"a", "b"}, 2},
		{"nothing new", []string{"Hi"}, []string{"hi", "HI"}, []string{"Hi"}, 0},
		{"dedup within additions", []string{"x"}, []string{"Yo", "yo", "YO"}, []string{"x", "Yo"}, 1},
		{"keeps insertion order", []string{"b"}, []string{"c", "a"}, []string{"b", "c", "a"}, 2},
		{"non-ascii case folding", []string{"Café"}, []string{"CAFÉ", "thé"}, []string{"Café", "thé"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, added := extendUnique(tt.target, tt.additions)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("extendUnique() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantAdded, added)
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	ds := NewDataset()
	Merge(ds, "other", Expansion{Patterns: []string{"x"}, Responses: []string{"y"}})
	exp := Expansion{
		Patterns:  []string{"Hello", "How are you"},
		Responses: []string{"Fine", "Great", "Okay"},
	}

	first := Merge(ds, "greet", exp)
	second := Merge(ds, "greet", exp)

	assert.Equal(t, 2, first.PatternsAdded)
	assert.Equal(t, 3, first.ResponsesAdded)
	assert.Equal(t, 0, second.PatternsAdded)
	assert.Equal(t, 0, second.ResponsesAdded)
	assert.Len(t, ds.Intents, 2)
}

func TestMerge_TagMatchIsCaseSensitive(t *testing.T) {
	ds := &Dataset{Intents: []Intent{{Tag: "Skills", Patterns: []string{"a"}, Responses: []string{"b"}}}}

	res := Merge(ds, "skills", Expansion{Patterns: []string{"a"}, Responses: []string{"b"}})

	assert.True(t, res.Created)
	assert.Len(t, ds.Intents, 2)
}

func TestMarshal_IndentAndUnescaped(t *testing.T) {
	ds := &Dataset{Intents: []Intent{{
		Tag:       "café",
		Patterns:  []string{"<b>héllo</b> & more"},
		Responses: nil,
	}}}

	data, err := Marshal(ds)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "\n  \"intents\": [")
	assert.Contains(t, out, `"café"`)
	assert.Contains(t, out, `"<b>héllo</b> & more"`)
	assert.Contains(t, out, `"responses": []`)
	assert.Contains(t, out, `"context_set": ""`)

	var round Dataset
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "café", round.Intents[0].Tag)
}

func TestMarshal_EmptyDataset(t *testing.T) {
	data, err := Marshal(&Dataset{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"intents\": []\n}\n", string(data))
}
