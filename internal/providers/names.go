package providers

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const maxSuggestions = 3

var folder = cases.Fold()

// NormalizeName builds a lookup key: width folded (so full-width Latin and
// half-width katakana match their usual forms), NFKC normalized, case folded
// and with inner whitespace collapsed.
func NormalizeName(name string) string {
	s := width.Fold.String(name)
	s = norm.NFKC.String(s)
	s = folder.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Slug turns a display name into an API identifier, e.g. "Mr. Mime" -> "mr-mime".
func Slug(name string) string {
	return slug.Make(NormalizeName(name))
}

// Suggest returns up to three candidates close to name by edit distance.
// The allowed distance grows with the length of the query.
func Suggest(name string, candidates []string) []string {
	query := NormalizeName(name)
	if query == "" {
		return nil
	}
	limit := utf8.RuneCountInString(query) / 3
	if limit < 2 {
		limit = 2
	}

	type scored struct {
		name     string
		distance int
	}
	var matches []scored
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		d := levenshtein.ComputeDistance(query, NormalizeName(c))
		if d <= limit || strings.HasPrefix(NormalizeName(c), query) {
			matches = append(matches, scored{name: c, distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.name)
	}
	return out
}
