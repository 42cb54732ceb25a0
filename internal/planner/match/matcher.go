// Package match resolves free-text queries against a day's task list.
//
// Matching is deliberately tiered rather than fuzzy so that every resolution
// can be explained in a confirmation message: exact text beats prefix beats
// substring, and within a tier the first task in list order wins.
package match

import (
	"strings"

	"dayplanner/internal/model"
)

// Find returns the best-matching task for query.
// The query is lower-cased and trimmed; an empty query never matches.
func Find(tasks []model.Task, query string) (model.Task, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.Task{}, false
	}

	for _, t := range tasks {
		if strings.ToLower(t.Text) == q {
			return t, true
		}
	}

	for _, t := range tasks {
		if strings.HasPrefix(strings.ToLower(t.Text), q) {
			return t, true
		}
	}

	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Text), q) {
			return t, true
		}
	}

	return model.Task{}, false
}
