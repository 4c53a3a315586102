package metrics

import (
	"strings"

	"github.com/jumbohomes/backend/internal/models"
)

type FloorPlanStats struct {
	Verified    int     `json:"verified"`
	Total       int     `json:"total"`
	CoveragePct float64 `json:"coverage_pct"`
}

// FloorPlanVerified checks the catalogue URL the way the source data is
// actually shaped: any non-empty value carrying an "https" substring.
// The check is case-sensitive on purpose.
func FloorPlanVerified(item models.CatalogueItem) bool {
	return item.FloorPlanURL != "" && strings.Contains(item.FloorPlanURL, "https")
}

func FloorPlans(catalogue []models.CatalogueItem) FloorPlanStats {
	stats := FloorPlanStats{Total: len(catalogue)}
	for _, item := range catalogue {
		if FloorPlanVerified(item) {
			stats.Verified++
		}
	}
	if stats.Total > 0 {
		stats.CoveragePct = float64(stats.Verified) / float64(stats.Total) * 100
	}
	return stats
}
