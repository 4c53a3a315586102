package overrides

import "testing"

func TestGetReturnsZeroWhenAbsent(t *testing.T) {
	s := NewStore()
	ov := s.Get("Asha")
	if ov.Tours != 0 || ov.GoogleRatings != 0 {
		t.Fatalf("expected zero override, got %+v", ov)
	}
}

func TestSetUpsertsLastWriteWins(t *testing.T) {
	s := NewStore()
	s.Set("Asha", 5, 2)
	s.Set("asha", 20, 10)

	ov := s.Get("  ASHA ")
	if ov.Tours != 20 || ov.GoogleRatings != 10 {
		t.Fatalf("expected last write to win, got %+v", ov)
	}
	if len(s.All()) != 1 {
		t.Fatalf("expected one entry, got %d", len(s.All()))
	}
}

func TestBonus(t *testing.T) {
	s := NewStore()
	s.Set("Ravi", 20, 10)
	if got := s.Bonus("Ravi"); got != 30 {
		t.Fatalf("expected bonus 30, got %d", got)
	}
	if got := s.Bonus("Nobody"); got != 0 {
		t.Fatalf("expected bonus 0 for absent person, got %d", got)
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	s.Set("Ravi", 1, 1)
	s.Delete("ravi")
	if got := s.Get("Ravi"); got.Tours != 0 {
		t.Fatalf("expected deleted override, got %+v", got)
	}
}
