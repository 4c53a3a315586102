package metrics

import (
	"sort"
	"strings"

	"github.com/jumbohomes/backend/internal/dataset"
	"github.com/jumbohomes/backend/internal/models"
	"github.com/jumbohomes/backend/internal/utils"
)

// agentRoles are the admin roles that compete on the leaderboard.
var agentRoles = map[string]struct{}{
	"buyer agent":         {},
	"bsa":                 {},
	"buyer success agent": {},
}

type LeaderboardRow struct {
	Agent             string `json:"agent"`
	LeadOwnerPoints   int    `json:"lead_owner_points"`
	VAPoints          int    `json:"va_points"`
	TotalPoints       int    `json:"total_points"`
	VisitorsScheduled int    `json:"visitors_scheduled"`
	VisitorsCompleted int    `json:"visitors_completed"`
	VisitsManaged     int    `json:"visits_managed"`
	InspectionsDone   int    `json:"inspections_done"`
}

// Agents lists admins whose role qualifies for the leaderboard.
func Agents(admins []models.Admin) []models.Admin {
	var out []models.Admin
	for _, a := range admins {
		if _, ok := agentRoles[utils.NormalizeKey(a.Role)]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Leaderboard builds one row per agent, sorted by total points descending
// (ties by agent name for stable output). Overrides are not applied here;
// the presentation layer adds them on top.
func Leaderboard(snap *dataset.Snapshot, r DateRange, filter []string) []LeaderboardRow {
	loPoints := LeadOwnerPoints(snap, r)
	vaPoints := VAPoints(snap, r)

	wanted := map[string]struct{}{}
	for _, name := range filter {
		if k := utils.NormalizeKey(name); k != "" {
			wanted[k] = struct{}{}
		}
	}

	var rows []LeaderboardRow
	for _, agent := range Agents(snap.Admins) {
		key := utils.NormalizeKey(agent.Name)
		if len(wanted) > 0 {
			if _, ok := wanted[key]; !ok {
				continue
			}
		}

		row := LeaderboardRow{
			Agent:           agent.Name,
			LeadOwnerPoints: loPoints[key],
			VAPoints:        vaPoints[key],
		}

		scheduled := map[string]struct{}{}
		completed := map[string]struct{}{}
		for _, v := range snap.Visits {
			if !r.Contains(v.Date) {
				continue
			}
			if utils.NormalizeKey(v.LeadOwner) == key {
				scheduled[v.Phone] = struct{}{}
				if v.Completed {
					completed[v.Phone] = struct{}{}
				}
			}
			if v.Managed && v.Completed && utils.NormalizeKey(snap.NameForEmail(v.VAEmail)) == key {
				row.VisitsManaged++
			}
		}
		for _, ins := range snap.Inspections {
			if r.Contains(ins.Date) && utils.NormalizeKey(ins.VAName) == key {
				row.InspectionsDone++
			}
		}

		row.VisitorsScheduled = len(scheduled)
		row.VisitorsCompleted = len(completed)
		row.TotalPoints = row.LeadOwnerPoints + row.VAPoints
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPoints == rows[j].TotalPoints {
			return strings.Compare(rows[i].Agent, rows[j].Agent) < 0
		}
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	return rows
}
