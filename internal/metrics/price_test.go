package metrics

import (
	"testing"
	"time"

	"github.com/jumbohomes/backend/internal/models"
)

func entry(id string, d time.Time, price float64) models.PriceHistoryEntry {
	return models.PriceHistoryEntry{PropertyID: id, Date: d, Price: price}
}

func TestPriceRevisions(t *testing.T) {
	asOf := date(2024, time.March, 15)
	entries := []models.PriceHistoryEntry{
		// H1 dropped between Feb MTD and Mar MTD
		entry("H1", date(2024, time.February, 10), 95),
		entry("H1", date(2024, time.March, 5), 90),
		// H2 unchanged; latest entry inside each window wins
		entry("H2", date(2024, time.February, 3), 120),
		entry("H2", date(2024, time.February, 12), 125),
		entry("H2", date(2024, time.March, 12), 125),
		// H3 has no prior-month entries
		entry("H3", date(2024, time.March, 4), 80),
		// H4 entry is past the mid-month cutoff: no current value, excluded
		entry("H4", date(2024, time.March, 20), 60),
	}

	revs := PriceRevisions(entries, asOf)
	if len(revs) != 3 {
		t.Fatalf("expected 3 revisions, got %d: %+v", len(revs), revs)
	}

	byID := map[string]PriceRevision{}
	for _, r := range revs {
		byID[r.PropertyID] = r
	}

	if r := byID["H1"]; r.Direction != PriceDecreased || r.Change != -5 {
		t.Fatalf("H1: %+v", r)
	}
	if r := byID["H2"]; r.Direction != PriceUnchanged || r.Current != 125 {
		t.Fatalf("H2: %+v", r)
	}
	if r := byID["H3"]; r.Direction != PriceNoBaseline {
		t.Fatalf("H3: %+v", r)
	}
}

func TestPrevMonthCutoffClampsDay(t *testing.T) {
	got := prevMonthCutoff(date(2024, time.March, 31))
	if !got.Equal(date(2024, time.February, 29)) {
		t.Fatalf("expected 2024-02-29, got %s", got.Format("2006-01-02"))
	}

	got = prevMonthCutoff(date(2023, time.July, 31))
	if !got.Equal(date(2023, time.June, 30)) {
		t.Fatalf("expected 2023-06-30, got %s", got.Format("2006-01-02"))
	}
}
