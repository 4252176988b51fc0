package intents

import "strings"

// MergeResult reports what Merge did to the dataset.
type MergeResult struct {
	Tag            string
	Created        bool
	PatternsAdded  int
	ResponsesAdded int
}

// Merge integrates an expansion into the dataset under tag.
//
// For an existing tag, incoming entries are appended in order unless an entry
// with the same lowercase form is already present. For an unseen tag a new
// intent is appended with the expansion's lists taken verbatim.
func Merge(d *Dataset, tag string, exp Expansion) MergeResult {
	if existing := d.Find(tag); existing != nil {
		var addedP, addedR int
		existing.Patterns, addedP = extendUnique(existing.Patterns, exp.Patterns)
		existing.Responses, addedR = extendUnique(existing.Responses, exp.Responses)
		return MergeResult{Tag: tag, PatternsAdded: addedP, ResponsesAdded: addedR}
	}

	d.Intents = append(d.Intents, Intent{
		Tag:        tag,
		Patterns:   append(make([]string, 0, len(exp.Patterns)), exp.Patterns...),
		Responses:  append(make([]string, 0, len(exp.Responses)), exp.Responses...),
		ContextSet: "",
	})
	return MergeResult{
		Tag:            tag,
		Created:        true,
		PatternsAdded:  len(exp.Patterns),
		ResponsesAdded: len(exp.Responses),
	}
}

// extendUnique appends additions to target, skipping case-insensitive
// duplicates, including duplicates within additions.
func extendUnique(target, additions []string) ([]string, int) {
	seen := make(map[string]struct{}, len(target)+len(additions))
	for _, s := range target {
		seen[strings.ToLower(s)] = struct{}{}
	}
	added := 0
	for _, s := range additions {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		target = append(target, s)
		added++
	}
	return target, added
}
