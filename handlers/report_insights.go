package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"p9e.in/splicing/utils"
)

// GetReportStats godoc
// @Summary  Dashboard statistics: totals, completion rate, per-day and per-zone counts
// @Tags     reports
// @Produce  json
// @Success  200 {object} utils.ReportStats
// @Router   /api/reports/stats [get]
func (h *ReportHandler) GetReportStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetReportsGeoJSON godoc
// @Summary  Reports with GPS coordinates as a GeoJSON feature collection
// @Tags     reports
// @Produce  application/geo+json
// @Success  200
// @Router   /api/reports/geojson [get]
func (h *ReportHandler) GetReportsGeoJSON(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fc, skipped := utils.ReportsToGeoJSON(reports)
	if skipped > 0 {
		h.logger.Debug("reports without usable coordinates", zap.Int("skipped", skipped))
	}
	w.Header().Set("Content-Type", "application/geo+json")
	data, err := fc.MarshalJSON()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Health reports whether the report store is reachable.
func (h *ReportHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
