package metrics

import (
	"sort"
	"strings"

	"github.com/jumbohomes/backend/internal/models"
)

type ProjectCount struct {
	Project string `json:"project"`
	Visits  int    `json:"visits"`
}

// SplitHomesVisited tokenizes the delimited homes-visited field into
// building names. Commas and semicolons both act as delimiters.
func SplitHomesVisited(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TopProjects tallies building-name occurrences across in-range visits
// and returns the most-visited first. Ties keep first-seen order.
func TopProjects(visits []models.Visit, r DateRange, limit int) []ProjectCount {
	counts := map[string]int{}
	var order []string
	for _, v := range visits {
		if !r.Contains(v.Date) {
			continue
		}
		for _, name := range SplitHomesVisited(v.HomesVisited) {
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	firstSeen := make(map[string]int, len(order))
	for i, name := range order {
		firstSeen[name] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] == counts[order[j]] {
			return firstSeen[order[i]] < firstSeen[order[j]]
		}
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	out := make([]ProjectCount, 0, len(order))
	for _, name := range order {
		out = append(out, ProjectCount{Project: name, Visits: counts[name]})
	}
	return out
}
