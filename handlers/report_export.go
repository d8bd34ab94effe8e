package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"p9e.in/splicing/models"
	"p9e.in/splicing/utils"
)

const (
	exportSheet    = "Reports"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvMIME        = "text/csv"
	exportFilename = "splicing_reports"
)

var exportHeaders = []string{
	"ID", "Zone", "Chain No", "Splicing Team", "Name", "Job ID", "BJ/Site", "Routing", "Date",
	"GPS Coordinates", "Time Begin", "Time Finished", "Status", "Effect", "Problem Details", "Created At",
}

func exportRow(r models.Report) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Zone,
		r.ChainNo,
		r.SplicingTeam,
		r.Name,
		r.JobID,
		r.BjOrSite,
		r.Routing,
		r.Date,
		deref(r.GpsCoordinates),
		r.TimeBegin,
		r.FinishedAt(),
		r.StatusLabel(),
		r.Effect,
		deref(r.ProblemDetails),
		r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportReports godoc
// @Summary  Download all reports as xlsx or csv
// @Tags     exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  text/csv
// @Param    format query string false "Export format" Enums(xlsx, csv)
// @Success  200
// @Failure  400 {object} errorBody
// @Router   /api/reports/export [get]
func (h *ReportHandler) ExportReports(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "format must be xlsx or csv", Field: "format"})
		return
	}

	reports, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	now := h.service.Now().In(h.service.Location)

	var data []byte
	contentType := xlsxMIME
	if format == "csv" {
		contentType = csvMIME
		data, err = createCSVFile(reports)
	} else {
		data, err = createExcelFile(reports, now)
	}
	if err != nil {
		h.writeError(w, r, fmt.Errorf("build %s export: %w", format, err))
		return
	}

	filename := fmt.Sprintf("%s_%s.%s", exportFilename, now.Format("20060102_150405"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

type archiveResponse struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// ArchiveReports godoc
// @Summary  Store an Excel export and return its URL
// @Tags     exports
// @Produce  json
// @Success  201 {object} archiveResponse
// @Router   /api/reports/export/archive [post]
func (h *ReportHandler) ArchiveReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	now := h.service.Now().In(h.service.Location)
	data, err := createExcelFile(reports, now)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("build xlsx export: %w", err))
		return
	}

	name := fmt.Sprintf("%s_%s_%s.xlsx", exportFilename, now.Format("20060102_150405"), uuid.NewString()[:8])
	url, err := h.exports.Save(r.Context(), name, xlsxMIME, data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("report export archived", zap.String("name", name), zap.Int("reports", len(reports)))
	writeJSON(w, http.StatusCreated, archiveResponse{Name: name, URL: url, Count: len(reports)})
}

// createExcelFile renders reports into a styled workbook with a summary block.
func createExcelFile(reports []models.Report, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(exportSheet, "A1", "Splicing Reports")
	f.SetCellStyle(exportSheet, "A1", "A1", titleStyle)
	f.SetRowHeight(exportSheet, 1, 30)
	f.SetCellValue(exportSheet, "A2", fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetCellValue(exportSheet, cell, header)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
		f.SetColWidth(exportSheet, col, col, 18)
	}

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})
	for rowIdx, report := range reports {
		for colIdx, value := range exportRow(report) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			if colIdx == 0 {
				f.SetCellValue(exportSheet, cell, report.ID)
			} else {
				f.SetCellValue(exportSheet, cell, value)
			}
			f.SetCellStyle(exportSheet, cell, cell, dataStyle)
		}
	}

	stats := utils.BuildReportStats(reports, now)
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E7E6E6"},
			Pattern: 1,
		},
	})
	summaryRow := len(reports) + 7
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(exportSheet, cell, "Summary")
	f.SetCellStyle(exportSheet, cell, cell, summaryStyle)
	summary := []struct {
		label string
		value any
	}{
		{"Total", stats.Total},
		{"Completed", stats.Completed},
		{"Not Complete", stats.Pending},
		{"Completion Rate (%)", stats.CompletionRate},
	}
	for i, s := range summary {
		keyCell, _ := excelize.CoordinatesToCellName(1, summaryRow+1+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow+1+i)
		f.SetCellValue(exportSheet, keyCell, s.label)
		f.SetCellValue(exportSheet, valueCell, s.value)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// createCSVFile renders reports as CSV with the same columns as the workbook.
func createCSVFile(reports []models.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write(exportHeaders)
	for _, report := range reports {
		writer.Write(exportRow(report))
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}
