package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jumbohomes/backend/internal/dataset"
	"github.com/jumbohomes/backend/internal/metrics"
	"github.com/jumbohomes/backend/internal/overrides"
)

type Handler struct {
	Data      *dataset.Store
	Loader    dataset.Loader
	Overrides *overrides.Store
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
	TopLimit  int
}

const dateLayout = "2006-01-02"

func (h *Handler) Healthz(c *gin.Context) {
	snap, err := h.Data.Current()
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "NOT_LOADED", "No data snapshot loaded", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"load_id":   snap.LoadID,
		"loaded_at": snap.LoadedAt,
		"rows":      snap.RowCounts(),
	})
}

// @Summary Agent leaderboard
// @Description Points per agent over the selected range, overrides applied on top
// @Tags leaderboard
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param agents query string false "Comma-separated agent filter"
// @Success 200 {object} map[string]any
// @Router /api/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	snap, r, ok := h.snapshotAndRange(c)
	if !ok {
		return
	}

	var filter []string
	if raw := strings.TrimSpace(c.Query("agents")); raw != "" {
		filter = strings.Split(raw, ",")
	}

	base := metrics.Leaderboard(snap, r, filter)
	rows := make([]gin.H, 0, len(base))
	for _, row := range base {
		ov := h.Overrides.Get(row.Agent)
		rows = append(rows, gin.H{
			"agent":              row.Agent,
			"lead_owner_points":  row.LeadOwnerPoints,
			"va_points":          row.VAPoints,
			"computed_points":    row.TotalPoints,
			"override_tours":     ov.Tours,
			"override_ratings":   ov.GoogleRatings,
			"total_points":       row.TotalPoints + ov.Tours + ov.GoogleRatings,
			"visitors_scheduled": row.VisitorsScheduled,
			"visitors_completed": row.VisitorsCompleted,
			"visits_managed":     row.VisitsManaged,
			"inspections_done":   row.InspectionsDone,
		})
	}
	c.JSON(http.StatusOK, gin.H{"range": rangePayload(r), "rows": rows})
}

// @Summary Supply funnel
// @Tags supply
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]any
// @Router /api/supply [get]
func (h *Handler) Supply(c *gin.Context) {
	snap, r, ok := h.snapshotAndRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": rangePayload(r), "supply": metrics.Supply(snap, r)})
}

// @Summary Demand funnel
// @Tags demand
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]any
// @Router /api/demand [get]
func (h *Handler) Demand(c *gin.Context) {
	snap, r, ok := h.snapshotAndRange(c)
	if !ok {
		return
	}
	buyers := metrics.Compare(r, func(r metrics.DateRange) float64 {
		return float64(metrics.Demand(snap, r).BuyerLeads)
	})
	c.JSON(http.StatusOK, gin.H{
		"range":       rangePayload(r),
		"demand":      metrics.Demand(snap, r),
		"buyer_leads": buyers,
	})
}

// @Summary Inventory (SKU) stats
// @Tags sku
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param top query int false "Top projects limit"
// @Success 200 {object} map[string]any
// @Router /api/sku [get]
func (h *Handler) SKU(c *gin.Context) {
	snap, r, ok := h.snapshotAndRange(c)
	if !ok {
		return
	}
	limit := h.TopLimit
	if raw := c.Query("top"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	c.JSON(http.StatusOK, gin.H{"range": rangePayload(r), "sku": metrics.SKU(snap, r, limit)})
}

// @Summary Price revisions, month-to-date vs prior month
// @Tags prices
// @Produce json
// @Param as_of query string false "Cutoff date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]any
// @Router /api/price-revisions [get]
func (h *Handler) PriceRevisions(c *gin.Context) {
	snap, err := h.Data.Current()
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "NOT_LOADED", "No data snapshot loaded", nil)
		return
	}

	asOf := time.Now().UTC()
	if raw := strings.TrimSpace(c.Query("as_of")); raw != "" {
		asOf, err = time.Parse(dateLayout, raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "as_of must be YYYY-MM-DD", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"as_of":     asOf.Format(dateLayout),
		"revisions": metrics.PriceRevisions(snap.PriceHistory, asOf),
	})
}

// @Summary Offer activity
// @Tags offers
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]any
// @Router /api/offers [get]
func (h *Handler) Offers(c *gin.Context) {
	snap, r, ok := h.snapshotAndRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": rangePayload(r), "offers": metrics.Offers(snap.Offers, r)})
}

type OverrideRequest struct {
	Person        string `json:"person" validate:"required"`
	Tours         int    `json:"tours" validate:"gte=0"`
	GoogleRatings int    `json:"google_ratings" validate:"gte=0"`
}

// @Summary Set a manual point override
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body OverrideRequest true "Override"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/overrides [post]
func (h *Handler) SetOverride(c *gin.Context) {
	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	ov := h.Overrides.Set(strings.TrimSpace(req.Person), req.Tours, req.GoogleRatings)
	c.JSON(http.StatusOK, gin.H{"override": ov})
}

func (h *Handler) ListOverrides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Overrides.All()})
}

func (h *Handler) DeleteOverride(c *gin.Context) {
	h.Overrides.Delete(c.Param("person"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Reload the CSV snapshot from disk
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/reload [post]
func (h *Handler) Reload(c *gin.Context) {
	snap, err := h.Loader.Load()
	if err != nil {
		if errors.Is(err, dataset.ErrMissingFile) {
			writeError(c, http.StatusInternalServerError, "MISSING_FILE", "Required CSV file missing", err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "LOAD_ERROR", "Snapshot reload failed", err.Error())
		return
	}
	h.Data.Swap(snap)
	c.JSON(http.StatusOK, gin.H{
		"load_id":   snap.LoadID,
		"loaded_at": snap.LoadedAt,
		"rows":      snap.RowCounts(),
		"skipped":   snap.Skipped,
	})
}

func (h *Handler) snapshotAndRange(c *gin.Context) (*dataset.Snapshot, metrics.DateRange, bool) {
	snap, err := h.Data.Current()
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "NOT_LOADED", "No data snapshot loaded", nil)
		return nil, metrics.DateRange{}, false
	}
	r, err := parseRange(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid date range", err.Error())
		return nil, metrics.DateRange{}, false
	}
	return snap, r, true
}

func parseRange(c *gin.Context) (metrics.DateRange, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(c.Query("start")))
	if err != nil {
		return metrics.DateRange{}, err
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(c.Query("end")))
	if err != nil {
		return metrics.DateRange{}, err
	}
	return metrics.NewRange(start, end)
}

func rangePayload(r metrics.DateRange) gin.H {
	return gin.H{
		"start": r.Start.Format(dateLayout),
		"end":   r.End.Format(dateLayout),
		"days":  r.Days(),
	}
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
