package metrics

import (
	"github.com/jumbohomes/backend/internal/models"
)

type OffersActivity struct {
	Total    Comparison     `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// Offers counts offers made in range, with a period-over-period
// comparison and an in-range status breakdown.
func Offers(offers []models.Offer, r DateRange) OffersActivity {
	activity := OffersActivity{
		Total: Compare(r, func(r DateRange) float64 {
			n := 0
			for _, o := range offers {
				if r.Contains(o.Date) {
					n++
				}
			}
			return float64(n)
		}),
		ByStatus: map[string]int{},
	}
	for _, o := range offers {
		if r.Contains(o.Date) {
			activity.ByStatus[o.Status]++
		}
	}
	return activity
}
