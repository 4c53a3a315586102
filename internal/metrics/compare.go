package metrics

import "errors"

// ErrNoBaseline means the previous-period value is zero, so a percentage
// delta is undefined. Callers render it as "N/A" instead of a number.
var ErrNoBaseline = errors.New("no baseline for comparison")

// Metric is any scalar calculator evaluated over a date range.
type Metric func(r DateRange) float64

type Comparison struct {
	Current  float64  `json:"current"`
	Previous float64  `json:"previous"`
	PctDelta *float64 `json:"pct_delta"`
}

// PctDelta is (current-previous)/previous as a percentage.
func PctDelta(current, previous float64) (float64, error) {
	if previous == 0 {
		return 0, ErrNoBaseline
	}
	return (current - previous) / previous * 100, nil
}

// Compare evaluates a metric over the primary range and the immediately
// preceding range of identical length. PctDelta stays nil when the
// previous value is zero.
func Compare(r DateRange, m Metric) Comparison {
	cmp := Comparison{
		Current:  m(r),
		Previous: m(r.Previous()),
	}
	if delta, err := PctDelta(cmp.Current, cmp.Previous); err == nil {
		cmp.PctDelta = &delta
	}
	return cmp
}
