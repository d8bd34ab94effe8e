package handlers

import (
	"net/http"

	"p9e.in/splicing/models"
)

// ListReports godoc
// @Summary  List all reports ordered by id
// @Tags     reports
// @Produce  json
// @Success  200 {array} models.Report
// @Router   /api/reports [get]
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// CreateReport godoc
// @Summary  Create a report; timeBegin defaults to the current time
// @Tags     reports
// @Accept   json
// @Produce  json
// @Success  201 {object} models.Report
// @Failure  400 {object} errorBody
// @Router   /api/reports [post]
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	input, err := models.ParseCreateReportInput(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// UpdateReport godoc
// @Summary  Partially update a report
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    id path int true "Report ID"
// @Success  200 {object} models.Report
// @Failure  400 {object} errorBody
// @Failure  404 {object} errorBody
// @Router   /api/reports/{id} [patch]
func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	changes, err := models.ParseReportChanges(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.service.Update(r.Context(), id, changes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// CompleteReport godoc
// @Summary  Mark a report complete and stamp timeFinished
// @Tags     reports
// @Produce  json
// @Param    id path int true "Report ID"
// @Success  200 {object} models.Report
// @Failure  404 {object} errorBody
// @Router   /api/reports/{id}/complete [patch]
func (h *ReportHandler) CompleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}
	report, err := h.service.Complete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// DeleteReport godoc
// @Summary  Delete a report
// @Tags     reports
// @Param    id path int true "Report ID"
// @Success  204
// @Router   /api/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListZones godoc
// @Summary  Zone codes offered by the entry form
// @Tags     reports
// @Produce  json
// @Success  200 {array} string
// @Router   /api/zones [get]
func ListZones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Zones)
}
