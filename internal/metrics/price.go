package metrics

import (
	"sort"
	"time"

	"github.com/jumbohomes/backend/internal/models"
)

const (
	PriceIncreased  = "increased"
	PriceDecreased  = "decreased"
	PriceUnchanged  = "unchanged"
	PriceNoBaseline = "no_baseline"
)

type PriceRevision struct {
	PropertyID string  `json:"property_id"`
	Current    float64 `json:"current"`
	Previous   float64 `json:"previous"`
	Change     float64 `json:"change"`
	Direction  string  `json:"direction"`
}

// PriceRevisions compares each property's month-to-date price against the
// prior month at the same day-of-month cutoff. asOf is injected by the
// caller; the calculator never reads the clock.
func PriceRevisions(entries []models.PriceHistoryEntry, asOf time.Time) []PriceRevision {
	asOf = Day(asOf)
	current := mtdRange(asOf)
	previous := mtdRange(prevMonthCutoff(asOf))

	byProperty := map[string][]models.PriceHistoryEntry{}
	var order []string
	for _, e := range entries {
		if _, ok := byProperty[e.PropertyID]; !ok {
			order = append(order, e.PropertyID)
		}
		byProperty[e.PropertyID] = append(byProperty[e.PropertyID], e)
	}
	sort.Strings(order)

	var out []PriceRevision
	for _, id := range order {
		cur, curOK := latestPrice(byProperty[id], current)
		prev, prevOK := latestPrice(byProperty[id], previous)
		if !curOK {
			continue
		}
		rev := PriceRevision{PropertyID: id, Current: cur}
		if !prevOK {
			rev.Direction = PriceNoBaseline
			out = append(out, rev)
			continue
		}
		rev.Previous = prev
		rev.Change = cur - prev
		switch {
		case rev.Change > 0:
			rev.Direction = PriceIncreased
		case rev.Change < 0:
			rev.Direction = PriceDecreased
		default:
			rev.Direction = PriceUnchanged
		}
		out = append(out, rev)
	}
	return out
}

func mtdRange(cutoff time.Time) DateRange {
	first := time.Date(cutoff.Year(), cutoff.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: first, End: cutoff}
}

// prevMonthCutoff shifts the cutoff one month back, clamping the day so
// e.g. March 31 compares against the last day of February.
func prevMonthCutoff(asOf time.Time) time.Time {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevLast := first.AddDate(0, 0, -1)
	day := asOf.Day()
	if day > prevLast.Day() {
		day = prevLast.Day()
	}
	return time.Date(prevLast.Year(), prevLast.Month(), day, 0, 0, 0, 0, time.UTC)
}

func latestPrice(entries []models.PriceHistoryEntry, r DateRange) (float64, bool) {
	var best time.Time
	var price float64
	found := false
	for _, e := range entries {
		d := Day(e.Date)
		if !r.Contains(d) {
			continue
		}
		if !found || d.After(best) {
			best = d
			price = e.Price
			found = true
		}
	}
	return price, found
}
