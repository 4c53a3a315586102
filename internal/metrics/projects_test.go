package metrics

import (
	"testing"
	"time"

	"github.com/jumbohomes/backend/internal/models"
)

func TestSplitHomesVisited(t *testing.T) {
	got := SplitHomesVisited(" BuildingA, BuildingB ;BuildingA")
	want := []string{"BuildingA", "BuildingB", "BuildingA"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestTopProjects(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))

	visits := []models.Visit{
		{Phone: "1", Date: date(2024, time.March, 11), HomesVisited: "BuildingA,BuildingB;BuildingA"},
		{Phone: "2", Date: date(2024, time.March, 12), HomesVisited: "BuildingC"},
		// outside range, must not count
		{Phone: "3", Date: date(2024, time.April, 1), HomesVisited: "BuildingC;BuildingC"},
	}

	top := TopProjects(visits, r, 10)
	if len(top) != 3 {
		t.Fatalf("expected 3 projects, got %d: %+v", len(top), top)
	}
	if top[0].Project != "BuildingA" || top[0].Visits != 2 {
		t.Fatalf("expected BuildingA=2 first, got %+v", top[0])
	}
	// BuildingB and BuildingC tie at 1; BuildingB was seen first
	if top[1].Project != "BuildingB" || top[2].Project != "BuildingC" {
		t.Fatalf("tie should keep first-seen order, got %+v", top)
	}
}

func TestTopProjectsLimit(t *testing.T) {
	r := mustRange(t, date(2024, time.March, 10), date(2024, time.March, 16))
	visits := []models.Visit{
		{Phone: "1", Date: date(2024, time.March, 11), HomesVisited: "A,B,C,D"},
	}
	top := TopProjects(visits, r, 2)
	if len(top) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(top))
	}
}
