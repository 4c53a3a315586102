package metrics

import (
	"time"

	"github.com/jumbohomes/backend/internal/models"
)

// visitDates groups distinct visit dates per phone across all visits,
// completed or not.
func visitDates(visits []models.Visit) map[string][]time.Time {
	seen := map[string]map[time.Time]struct{}{}
	for _, v := range visits {
		d := Day(v.Date)
		if seen[v.Phone] == nil {
			seen[v.Phone] = map[time.Time]struct{}{}
		}
		seen[v.Phone][d] = struct{}{}
	}
	out := make(map[string][]time.Time, len(seen))
	for phone, dates := range seen {
		for d := range dates {
			out[phone] = append(out[phone], d)
		}
	}
	return out
}

// RepeatVisitors classifies every phone with at least one visit. A phone
// is a repeat visitor when it visited before the range started, or on two
// or more distinct dates inside the range.
func RepeatVisitors(visits []models.Visit, r DateRange) map[string]bool {
	out := map[string]bool{}
	for phone, dates := range visitDates(visits) {
		inRange := 0
		prior := false
		for _, d := range dates {
			if d.Before(r.Start) {
				prior = true
			}
			if r.Contains(d) {
				inRange++
			}
		}
		out[phone] = prior || inRange >= 2
	}
	return out
}
