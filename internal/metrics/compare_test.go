package metrics

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	r, err := NewRange(start, end)
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}
	return r
}

func TestPreviousRangeIsAdjacentAndSameLength(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))
	prev := r.Previous()

	if prev.Days() != r.Days() {
		t.Fatalf("previous range length %d, want %d", prev.Days(), r.Days())
	}
	if !prev.End.Equal(r.Start.AddDate(0, 0, -1)) {
		t.Fatalf("previous range ends %s, want %s", prev.End, r.Start.AddDate(0, 0, -1))
	}
	if !prev.Start.Equal(date(2024, time.March, 3)) {
		t.Fatalf("previous range starts %s", prev.Start)
	}
}

func TestNewRangeRejectsInvertedRange(t *testing.T) {
	if _, err := NewRange(date(2024, time.March, 10), date(2024, time.March, 9)); err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestPctDelta(t *testing.T) {
	delta, err := PctDelta(120, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != 20 {
		t.Fatalf("expected 20%%, got %v", delta)
	}

	if _, err := PctDelta(50, 0); !errors.Is(err, ErrNoBaseline) {
		t.Fatalf("expected ErrNoBaseline, got %v", err)
	}
}

func TestCompareLeavesDeltaNilWithoutBaseline(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))

	cmp := Compare(r, func(q DateRange) float64 {
		if q.Start.Equal(r.Start) {
			return 50
		}
		return 0
	})
	if cmp.Current != 50 || cmp.Previous != 0 {
		t.Fatalf("unexpected comparison: %+v", cmp)
	}
	if cmp.PctDelta != nil {
		t.Fatalf("expected nil delta, got %v", *cmp.PctDelta)
	}

	cmp = Compare(r, func(q DateRange) float64 {
		if q.Start.Equal(r.Start) {
			return 120
		}
		return 100
	})
	if cmp.PctDelta == nil || *cmp.PctDelta != 20 {
		t.Fatalf("expected 20%% delta, got %+v", cmp)
	}
}
