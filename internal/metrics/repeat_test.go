package metrics

import (
	"testing"
	"time"

	"github.com/jumbohomes/backend/internal/models"
)

func visit(phone string, d time.Time) models.Visit {
	return models.Visit{Phone: phone, Date: d}
}

func TestRepeatVisitors(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))

	visits := []models.Visit{
		// single in-range visit, no history: new visitor
		visit("111", date(2024, time.March, 12)),
		// visited before the range start
		visit("222", date(2024, time.February, 1)),
		visit("222", date(2024, time.March, 11)),
		// two distinct dates inside the range
		visit("333", date(2024, time.March, 10)),
		visit("333", date(2024, time.March, 15)),
		// two visits on the same day count as one date
		visit("444", date(2024, time.March, 12)),
		visit("444", date(2024, time.March, 12)),
	}

	rv := RepeatVisitors(visits, r)
	want := map[string]bool{"111": false, "222": true, "333": true, "444": false}
	for phone, expected := range want {
		if rv[phone] != expected {
			t.Errorf("phone %s: repeat=%v, want %v", phone, rv[phone], expected)
		}
	}
}
