package metrics

import (
	"github.com/jumbohomes/backend/internal/dataset"
	"github.com/jumbohomes/backend/internal/utils"
)

const (
	PointsNewVisitor    = 3
	PointsRepeatVisitor = 7
	PointsManagedVisit  = 4
	PointsInspection    = 4
)

// LeadOwnerPoints scores each owner lead created in range by its phone's
// visit history: 7 for a repeat visitor, 3 for a first-time visitor with
// a single in-range visit date, 0 when the phone never visited.
// Keys are normalized lead-owner names.
func LeadOwnerPoints(snap *dataset.Snapshot, r DateRange) map[string]int {
	rv := RepeatVisitors(snap.Visits, r)
	dates := visitDates(snap.Visits)

	out := map[string]int{}
	for _, lead := range snap.Owners {
		if !r.Contains(lead.CreatedAt) {
			continue
		}
		all, ok := dates[lead.Phone]
		if !ok {
			continue
		}
		owner := utils.NormalizeKey(lead.LeadOwner)
		if rv[lead.Phone] {
			out[owner] += PointsRepeatVisitor
			continue
		}
		for _, d := range all {
			if r.Contains(d) {
				out[owner] += PointsNewVisitor
				break
			}
		}
	}
	return out
}

// VAPoints credits 4 points per managed completed visit in range and 4
// per inspection in range. Visit VAs are identified by email and resolved
// through the admin mapping; unmapped emails fall into "Unknown".
// Keys are normalized VA names.
func VAPoints(snap *dataset.Snapshot, r DateRange) map[string]int {
	out := map[string]int{}
	for _, v := range snap.Visits {
		if !v.Managed || !v.Completed || !r.Contains(v.Date) {
			continue
		}
		name := snap.NameForEmail(v.VAEmail)
		out[utils.NormalizeKey(name)] += PointsManagedVisit
	}
	for _, ins := range snap.Inspections {
		if !r.Contains(ins.Date) {
			continue
		}
		out[utils.NormalizeKey(ins.VAName)] += PointsInspection
	}
	return out
}
