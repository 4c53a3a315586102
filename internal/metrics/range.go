package metrics

import (
	"fmt"
	"time"
)

// DateRange is an inclusive day-granular interval driving all calculators.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) (DateRange, error) {
	start = Day(start)
	end = Day(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("range end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return DateRange{Start: start, End: end}, nil
}

// Day truncates to midnight UTC so visits on the same calendar day compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Previous is the contiguous range of identical length ending one day
// before Start.
func (r DateRange) Previous() DateRange {
	d := r.Days()
	return DateRange{
		Start: r.Start.AddDate(0, 0, -d),
		End:   r.Start.AddDate(0, 0, -1),
	}
}

func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}
