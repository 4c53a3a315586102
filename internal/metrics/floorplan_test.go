package metrics

import (
	"testing"

	"github.com/jumbohomes/backend/internal/models"
)

func TestFloorPlanVerified(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://cdn.jumbo.in/fp/123.png", true},
		{"see https link in notes", true},
		{"http://cdn.jumbo.in/fp/123.png", false},
		// the source check is case-sensitive
		{"HTTPS://cdn.jumbo.in/fp/123.png", false},
		{"", false},
		{"pending", false},
	}
	for _, tc := range cases {
		got := FloorPlanVerified(models.CatalogueItem{HomeID: "H1", FloorPlanURL: tc.url})
		if got != tc.want {
			t.Errorf("FloorPlanVerified(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestFloorPlans(t *testing.T) {
	catalogue := []models.CatalogueItem{
		{HomeID: "H1", FloorPlanURL: "https://cdn.jumbo.in/1.png"},
		{HomeID: "H2", FloorPlanURL: ""},
		{HomeID: "H3", FloorPlanURL: "https://cdn.jumbo.in/3.png"},
		{HomeID: "H4", FloorPlanURL: "tbd"},
	}
	stats := FloorPlans(catalogue)
	if stats.Verified != 2 || stats.Total != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.CoveragePct != 50 {
		t.Fatalf("expected 50%% coverage, got %v", stats.CoveragePct)
	}
}
