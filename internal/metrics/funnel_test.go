package metrics

import (
	"testing"
	"time"

	"github.com/jumbohomes/backend/internal/dataset"
	"github.com/jumbohomes/backend/internal/models"
)

func TestSupply(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))

	snap := &dataset.Snapshot{
		Owners: []models.OwnerLead{
			{Phone: "1", Status: "New", CreatedAt: date(2024, time.March, 11)},
			{Phone: "2", Status: "Proposal Sent", CreatedAt: date(2024, time.March, 12)},
			{Phone: "3", Status: "Proposal Accepted", CreatedAt: date(2024, time.March, 13)},
			// previous period
			{Phone: "4", Status: "New", CreatedAt: date(2024, time.March, 5)},
		},
		Homes: []models.Home{
			{ID: "H1", Status: "On Hold", AskPrice: 85},
			{ID: "H2", Status: "On Hold", AskPrice: 120},
			{ID: "H3", Status: "Live", AskPrice: 200},
		},
	}
	snap.Reindex()

	funnel := Supply(snap, r)
	if funnel.OwnerLeads.Current != 3 || funnel.OwnerLeads.Previous != 1 {
		t.Fatalf("owner leads: %+v", funnel.OwnerLeads)
	}
	if funnel.Onboarded.Current != 2 {
		t.Fatalf("onboarded: %+v", funnel.Onboarded)
	}
	if funnel.RegrettableLoss != 205 {
		t.Fatalf("regrettable loss: %v", funnel.RegrettableLoss)
	}
}

func TestDemand(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))

	snap := &dataset.Snapshot{
		Buyers: []models.BuyerLead{
			{Phone: "1", CreatedAt: date(2024, time.March, 11)},
			{Phone: "2", CreatedAt: date(2024, time.March, 12)},
			{Phone: "3", CreatedAt: date(2024, time.March, 12)},
			{Phone: "4", CreatedAt: date(2024, time.March, 13)},
		},
		Visits: []models.Visit{
			{Phone: "1", Date: date(2024, time.March, 12), Completed: true},
			// second completed visit by the same phone: still one visitor
			{Phone: "1", Date: date(2024, time.March, 13), Completed: true},
			{Phone: "2", Date: date(2024, time.March, 13)},
		},
	}
	snap.Reindex()

	funnel := Demand(snap, r)
	if funnel.BuyerLeads != 4 {
		t.Fatalf("buyer leads: %d", funnel.BuyerLeads)
	}
	if funnel.VisitorsScheduled != 2 || funnel.VisitorsCompleted != 1 {
		t.Fatalf("funnel: %+v", funnel)
	}
	if funnel.ScheduledPct != 50 || funnel.CompletedPct != 25 {
		t.Fatalf("pcts: %+v", funnel)
	}
}

func TestSKU(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))

	snap := &dataset.Snapshot{
		Homes: []models.Home{
			{ID: "H1", Status: "Live"},
			{ID: "H2", Status: "Sold"},
			{ID: "H3", Status: "Live"},
		},
		Catalogue: []models.CatalogueItem{
			{HomeID: "H1", FloorPlanURL: "https://cdn.jumbo.in/1.png"},
			{HomeID: "H2"},
		},
		Visits: []models.Visit{
			{Phone: "1", Date: date(2024, time.March, 11), HomesVisited: "Aurum;Birchwood"},
		},
	}
	snap.Reindex()

	stats := SKU(snap, r, 10)
	if stats.LiveHomes != 2 {
		t.Fatalf("live homes: %d", stats.LiveHomes)
	}
	if stats.FloorPlans.Verified != 1 || stats.FloorPlans.Total != 2 {
		t.Fatalf("floor plans: %+v", stats.FloorPlans)
	}
	if len(stats.TopProjects) != 2 {
		t.Fatalf("top projects: %+v", stats.TopProjects)
	}
}
