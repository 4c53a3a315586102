package metrics

import (
	"github.com/jumbohomes/backend/internal/dataset"
	"github.com/jumbohomes/backend/internal/utils"
)

// onboardedStatuses are owner-lead statuses that count as onboarded.
var onboardedStatuses = map[string]struct{}{
	"proposal sent":     {},
	"proposal accepted": {},
}

type SupplyFunnel struct {
	OwnerLeads      Comparison `json:"owner_leads"`
	Onboarded       Comparison `json:"onboarded"`
	RegrettableLoss float64    `json:"regrettable_loss"`
}

// Supply counts owner leads and onboarded owners in range, each with a
// period-over-period comparison. Regrettable loss sums the ask price of
// on-hold inventory; homes carry no dates so it has no comparison.
func Supply(snap *dataset.Snapshot, r DateRange) SupplyFunnel {
	funnel := SupplyFunnel{
		OwnerLeads: Compare(r, func(r DateRange) float64 {
			return float64(countOwnerLeads(snap, r, false))
		}),
		Onboarded: Compare(r, func(r DateRange) float64 {
			return float64(countOwnerLeads(snap, r, true))
		}),
	}
	for _, h := range snap.Homes {
		if utils.NormalizeKey(h.Status) == "on hold" {
			funnel.RegrettableLoss += h.AskPrice
		}
	}
	return funnel
}

func countOwnerLeads(snap *dataset.Snapshot, r DateRange, onboardedOnly bool) int {
	n := 0
	for _, lead := range snap.Owners {
		if !r.Contains(lead.CreatedAt) {
			continue
		}
		if onboardedOnly {
			if _, ok := onboardedStatuses[utils.NormalizeKey(lead.Status)]; !ok {
				continue
			}
		}
		n++
	}
	return n
}

type DemandFunnel struct {
	BuyerLeads        int     `json:"buyer_leads"`
	VisitorsScheduled int     `json:"visitors_scheduled"`
	VisitorsCompleted int     `json:"visitors_completed"`
	ScheduledPct      float64 `json:"scheduled_pct"`
	CompletedPct      float64 `json:"completed_pct"`
}

// Demand builds the buyer conversion funnel: leads created in range,
// distinct phones with a scheduled visit, distinct phones that completed
// one. Percentages are relative to the first stage.
func Demand(snap *dataset.Snapshot, r DateRange) DemandFunnel {
	funnel := DemandFunnel{}
	for _, b := range snap.Buyers {
		if r.Contains(b.CreatedAt) {
			funnel.BuyerLeads++
		}
	}

	scheduled := map[string]struct{}{}
	completed := map[string]struct{}{}
	for _, v := range snap.Visits {
		if !r.Contains(v.Date) {
			continue
		}
		scheduled[v.Phone] = struct{}{}
		if v.Completed {
			completed[v.Phone] = struct{}{}
		}
	}
	funnel.VisitorsScheduled = len(scheduled)
	funnel.VisitorsCompleted = len(completed)

	if funnel.BuyerLeads > 0 {
		funnel.ScheduledPct = float64(funnel.VisitorsScheduled) / float64(funnel.BuyerLeads) * 100
		funnel.CompletedPct = float64(funnel.VisitorsCompleted) / float64(funnel.BuyerLeads) * 100
	}
	return funnel
}

type SKUStats struct {
	LiveHomes   int            `json:"live_homes"`
	FloorPlans  FloorPlanStats `json:"floor_plans"`
	TopProjects []ProjectCount `json:"top_projects"`
}

// SKU summarizes sellable inventory: live homes, floor-plan coverage and
// the most-visited projects in range.
func SKU(snap *dataset.Snapshot, r DateRange, topLimit int) SKUStats {
	stats := SKUStats{
		FloorPlans:  FloorPlans(snap.Catalogue),
		TopProjects: TopProjects(snap.Visits, r, topLimit),
	}
	for _, h := range snap.Homes {
		if utils.NormalizeKey(h.Status) == "live" {
			stats.LiveHomes++
		}
	}
	return stats
}
