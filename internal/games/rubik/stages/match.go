package stages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxTypoDistance is the largest edit distance Find accepts as a typo.
const maxTypoDistance = 2

// NotFoundError is returned when a query matches no stage.
type NotFoundError struct {
	Query      string
	Suggestion string // Closest id, if any
}

func (e *NotFoundError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("stage not found: %s", e.Query)
	}
	return fmt.Sprintf("stage not found: %s (did you mean %s?)", e.Query, e.Suggestion)
}

// Find resolves a user query against a sorted stage list. It accepts, in
// order: an exact id, a case-insensitive id, a 1-based position, an id
// suffix after the numeric prefix ("crate" for "02-crate"), and finally the
// single closest id within a small edit distance.
func Find(stages []Stage, query string) (Stage, error) {
	q := strings.TrimSpace(query)
	for _, s := range stages {
		if s.ID == q {
			return s, nil
		}
	}
	lower := strings.ToLower(q)
	for _, s := range stages {
		if strings.ToLower(s.ID) == lower {
			return s, nil
		}
	}
	if n, err := strconv.Atoi(q); err == nil && n >= 1 && n <= len(stages) {
		return stages[n-1], nil
	}
	for _, s := range stages {
		if _, name, ok := strings.Cut(strings.ToLower(s.ID), "-"); ok && name == lower {
			return s, nil
		}
	}

	best, bestDist, ties := -1, 0, 0
	for i, s := range stages {
		d := distance(lower, strings.ToLower(s.ID))
		switch {
		case best < 0 || d < bestDist:
			best, bestDist, ties = i, d, 1
		case d == bestDist:
			ties++
		}
	}
	if best < 0 {
		return Stage{}, &NotFoundError{Query: q}
	}
	if bestDist <= maxTypoDistance && ties == 1 {
		return stages[best], nil
	}
	return Stage{}, &NotFoundError{Query: q, Suggestion: stages[best].ID}
}

// distance compares the query with both the full id and its name part.
func distance(query, id string) int {
	d := levenshtein.ComputeDistance(query, id)
	if _, name, ok := strings.Cut(id, "-"); ok {
		if nd := levenshtein.ComputeDistance(query, name); nd < d {
			d = nd
		}
	}
	return d
}
