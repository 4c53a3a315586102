package dataset

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jumbohomes/backend/internal/models"
	"github.com/jumbohomes/backend/internal/utils"
)

var ErrMissingFile = errors.New("required csv file missing")

const (
	FileOwners       = "Owners.csv"
	FileVisits       = "Visits.csv"
	FileBuyers       = "Buyers.csv"
	FileHomes        = "Homes.csv"
	FileInspections  = "home_inspection.csv"
	FileCatalogue    = "home_catalogue.csv"
	FilePriceHistory = "price-history-new.csv"
	FileOffers       = "offers.csv"
	FileAdmins       = "Admins.csv"
)

// Snapshot is one immutable load of the nine source tables. Handlers only
// ever read a snapshot; reloads build a fresh one and swap it in whole.
type Snapshot struct {
	LoadID   string
	LoadedAt time.Time

	Visits       []models.Visit
	Owners       []models.OwnerLead
	Buyers       []models.BuyerLead
	Homes        []models.Home
	Catalogue    []models.CatalogueItem
	Inspections  []models.Inspection
	PriceHistory []models.PriceHistoryEntry
	Offers       []models.Offer
	Admins       []models.Admin

	// Skipped counts malformed rows per source file.
	Skipped map[string]int

	nameByEmail map[string]string
	emailByName map[string]string
}

const UnknownName = "Unknown"

// Reindex rebuilds the name/email lookup maps from the admin table.
// The loader calls it once per load; tests that assemble snapshots by
// hand call it after filling Admins.
func (s *Snapshot) Reindex() {
	s.nameByEmail = map[string]string{}
	s.emailByName = map[string]string{}
	for _, a := range s.Admins {
		if a.Email != "" {
			s.nameByEmail[utils.NormalizeKey(a.Email)] = a.Name
		}
		s.emailByName[utils.NormalizeKey(a.Name)] = a.Email
	}
}

// NameForEmail resolves a VA email to the admin display name,
// falling back to the Unknown sentinel.
func (s *Snapshot) NameForEmail(email string) string {
	if name, ok := s.nameByEmail[utils.NormalizeKey(email)]; ok {
		return name
	}
	return UnknownName
}

// EmailForName is the reverse lookup, empty when unmapped.
func (s *Snapshot) EmailForName(name string) string {
	return s.emailByName[utils.NormalizeKey(name)]
}

func (s *Snapshot) RowCounts() map[string]int {
	return map[string]int{
		"visits":        len(s.Visits),
		"owners":        len(s.Owners),
		"buyers":        len(s.Buyers),
		"homes":         len(s.Homes),
		"catalogue":     len(s.Catalogue),
		"inspections":   len(s.Inspections),
		"price_history": len(s.PriceHistory),
		"offers":        len(s.Offers),
		"admins":        len(s.Admins),
	}
}

type Loader struct {
	Dir    string
	Logger zerolog.Logger
}

// Load reads all nine sources. A missing file aborts the load with
// ErrMissingFile; malformed rows are skipped and counted.
func (l Loader) Load() (*Snapshot, error) {
	snap := &Snapshot{
		LoadID:   uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Skipped:  map[string]int{},
	}

	steps := []struct {
		file string
		fn   func(*table, *Snapshot) int
	}{
		{FileAdmins, loadAdmins},
		{FileVisits, loadVisits},
		{FileOwners, loadOwners},
		{FileBuyers, loadBuyers},
		{FileHomes, loadHomes},
		{FileCatalogue, loadCatalogue},
		{FileInspections, loadInspections},
		{FilePriceHistory, loadPriceHistory},
		{FileOffers, loadOffers},
	}

	for _, step := range steps {
		tbl, err := readTable(filepath.Join(l.Dir, step.file))
		if err != nil {
			return nil, err
		}
		skipped := step.fn(tbl, snap) + tbl.badRows
		snap.Skipped[step.file] = skipped
		if skipped > 0 {
			l.Logger.Warn().Str("file", step.file).Int("skipped", skipped).Msg("malformed rows skipped")
		}
	}

	snap.Reindex()

	l.Logger.Info().
		Str("load_id", snap.LoadID).
		Interface("rows", snap.RowCounts()).
		Msg("snapshot loaded")
	return snap, nil
}

func loadVisits(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		phone := utils.NormalizePhone(t.fieldAny(rec, "lead phone", "phone"))
		dateStr := t.fieldAny(rec, "visit date", "date", "internal/visit_date")
		date, err := parseDate(dateStr)
		if phone == "" || err != nil {
			skipped++
			continue
		}

		status := t.fieldAny(rec, "status/visit_status", "visit status")
		completed := parseBool(t.fieldAny(rec, "status/visit completed", "visit completed")) ||
			containsFold(status, "completed")

		snap.Visits = append(snap.Visits, models.Visit{
			Phone:        phone,
			Date:         date,
			HomesVisited: t.fieldAny(rec, "homes_visited", "homes visited"),
			LeadOwner:    t.fieldAny(rec, "internal/leadowner", "lead owner", "leadowner"),
			VAEmail:      t.fieldAny(rec, "wa_msg/va_email", "va email", "va"),
			Locality:     t.fieldAny(rec, "visit_location", "locality", "location"),
			Managed:      parseBool(t.fieldAny(rec, "managed", "is_managed", "wa_msg/managed")),
			Completed:    completed,
		})
	}
	return skipped
}

func loadOwners(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		phone := utils.NormalizePhone(t.fieldAny(rec, "phone", "owner phone", "lead phone"))
		created, err := parseDate(t.fieldAny(rec, "created date", "created_at", "created"))
		if phone == "" || err != nil {
			skipped++
			continue
		}
		snap.Owners = append(snap.Owners, models.OwnerLead{
			Phone:     phone,
			LeadOwner: t.fieldAny(rec, "internal/leadowner", "lead owner", "leadowner"),
			Status:    t.fieldAny(rec, "status"),
			Locality:  t.fieldAny(rec, "locality", "zone"),
			CreatedAt: created,
		})
	}
	return skipped
}

func loadBuyers(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		phone := utils.NormalizePhone(t.fieldAny(rec, "phone", "buyer phone", "lead phone"))
		created, err := parseDate(t.fieldAny(rec, "dates/created", "created date", "created_at"))
		if phone == "" || err != nil {
			skipped++
			continue
		}
		snap.Buyers = append(snap.Buyers, models.BuyerLead{
			Phone:      phone,
			PriceRange: t.fieldAny(rec, "demand/price_range", "price range"),
			Locality:   t.fieldAny(rec, "location/locality", "locality"),
			CreatedAt:  created,
		})
	}
	return skipped
}

func loadHomes(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		id := t.fieldAny(rec, "id", "home id", "hid")
		if id == "" {
			skipped++
			continue
		}
		// ask price is optional; only regrettable-loss uses it
		price, err := parseFloat(t.fieldAny(rec, "home/ask_price (lacs)", "ask price", "ask_price"))
		if err != nil {
			price = 0
		}
		snap.Homes = append(snap.Homes, models.Home{
			ID:       id,
			Status:   t.fieldAny(rec, "internal/status", "status"),
			Locality: t.fieldAny(rec, "building/locality", "locality"),
			AskPrice: price,
		})
	}
	return skipped
}

func loadCatalogue(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		id := t.fieldAny(rec, "home id", "id", "hid")
		if id == "" {
			skipped++
			continue
		}
		snap.Catalogue = append(snap.Catalogue, models.CatalogueItem{
			HomeID:       id,
			FloorPlanURL: t.fieldAny(rec, "media/floor plan", "floor plan", "floor_plan_url"),
		})
	}
	return skipped
}

func loadInspections(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		date, err := parseDate(t.fieldAny(rec, "inspection date", "date"))
		va := t.fieldAny(rec, "inspected by", "va name", "va")
		if va == "" || err != nil {
			skipped++
			continue
		}
		snap.Inspections = append(snap.Inspections, models.Inspection{
			PropertyID: t.fieldAny(rec, "property id", "hid", "home id"),
			VAName:     va,
			Date:       date,
		})
	}
	return skipped
}

func loadPriceHistory(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		id := t.fieldAny(rec, "property id", "hid", "home id")
		date, dErr := parseDate(t.fieldAny(rec, "date", "month", "recorded at"))
		price, pErr := parseFloat(t.fieldAny(rec, "price", "list price"))
		if id == "" || dErr != nil || pErr != nil {
			skipped++
			continue
		}
		snap.PriceHistory = append(snap.PriceHistory, models.PriceHistoryEntry{
			PropertyID: id,
			Date:       date,
			Price:      price,
		})
	}
	return skipped
}

func loadOffers(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		id := t.fieldAny(rec, "id", "offer id")
		date, err := parseDate(t.fieldAny(rec, "date", "offer date", "created date"))
		if id == "" || err != nil {
			skipped++
			continue
		}
		snap.Offers = append(snap.Offers, models.Offer{
			ID:     id,
			Status: t.fieldAny(rec, "status"),
			Date:   date,
		})
	}
	return skipped
}

func loadAdmins(t *table, snap *Snapshot) int {
	skipped := 0
	for _, rec := range t.rows {
		name := t.fieldAny(rec, "first name", "name")
		email := t.fieldAny(rec, "email", "email id")
		if name == "" {
			skipped++
			continue
		}
		role := t.fieldAny(rec, "role")
		if role == "" {
			role = UnknownName
		}
		snap.Admins = append(snap.Admins, models.Admin{Name: name, Email: email, Role: role})
	}
	return skipped
}
