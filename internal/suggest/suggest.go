// Package suggest proposes close matches for mistyped names.
package suggest

import (
	"sort"
	"strings"
)

// maxResults caps how many suggestions are returned.
const maxResults = 3

// Names returns up to three of valid that are within edit distance of
// unknown, closest first. Comparison ignores case.
func Names(unknown string, valid []string) []string {
	unknown = strings.ToLower(strings.TrimSpace(unknown))
	if unknown == "" {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	var matches []scored
	threshold := maxDistance(unknown)
	for _, v := range valid {
		lv := strings.ToLower(v)
		d := levenshtein(unknown, lv)
		if strings.HasPrefix(lv, unknown) {
			d = min(d, 1)
		}
		if d <= threshold {
			matches = append(matches, scored{name: v, dist: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// maxDistance allows roughly one edit per three characters, at least one.
func maxDistance(s string) int {
	return max(len(s)/3, 1)
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
