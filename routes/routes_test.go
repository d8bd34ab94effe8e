package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"p9e.in/splicing/handlers"
	"p9e.in/splicing/models"
	"p9e.in/splicing/repos"
	"p9e.in/splicing/services"
	"p9e.in/splicing/storage"
)

const createBody = `{"zone":"SCT","chainNo":"CH001","splicingTeam":"Team 1","name":"John Smith",
	"jobId":"JOB-001","bjOrSite":"BJ-001","routing":"Route-A","date":"2025-12-15",
	"gpsCoordinates":"3.1390, 101.6869","effect":"Excellent connection quality"}`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	now := time.Date(2025, 12, 15, 9, 15, 0, 0, time.UTC)
	svc := services.NewReportService(repos.NewMemoryReportStore(), zap.NewNop(),
		services.WithClock(func() time.Time { return now }), services.WithLocation(time.UTC))
	exportDir := t.TempDir()
	h := handlers.NewReportHandler(svc, storage.NewLocalExportStore(exportDir, "/exports"), zap.NewNop())
	return RegisterRoutes(h, Options{ExportDir: exportDir, CORSAllowedOrigin: "*"}, zap.NewNop())
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeReport(t *testing.T, rec *httptest.ResponseRecorder) models.Report {
	t.Helper()
	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	return report
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateAndList(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/reports", createBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	created := decodeReport(t, rec)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.Status)
	assert.Equal(t, "09:15", created.TimeBegin)

	rec = do(t, h, http.MethodGet, "/api/reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reports []models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "JOB-001", reports[0].JobID)
}

func TestListEmptyIsArray(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateValidation(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/reports", `{"zone":"SCT"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "chainNo", body["field"])
	assert.Equal(t, "chainNo is required", body["message"])

	rec = do(t, h, http.MethodPost, "/api/reports", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body = decodeError(t, rec)
	assert.Equal(t, "Invalid JSON body", body["message"])
	_, hasField := body["field"]
	assert.False(t, hasField)
}

func TestUpdateCompleteDelete(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)

	rec := do(t, h, http.MethodPatch, "/api/reports/1", `{"effect":"Updated note"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeReport(t, rec)
	assert.Equal(t, "Updated note", updated.Effect)
	assert.Equal(t, "John Smith", updated.Name)

	rec = do(t, h, http.MethodPatch, "/api/reports/1/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	completed := decodeReport(t, rec)
	assert.True(t, completed.Status)
	require.NotNil(t, completed.TimeFinished)
	assert.Equal(t, "09:15", *completed.TimeFinished)

	rec = do(t, h, http.MethodDelete, "/api/reports/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/reports", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	// missing ids delete without error
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/reports/1", "").Code)
}

func TestUpdateEmptyBodyReturnsRecord(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)

	rec := do(t, h, http.MethodPatch, "/api/reports/1", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Excellent connection quality", decodeReport(t, rec).Effect)
}

func TestNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPatch, "/api/reports/999", `{"effect":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Report not found", decodeError(t, rec)["message"])

	rec = do(t, h, http.MethodPatch, "/api/reports/999/complete", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Report not found", decodeError(t, rec)["message"])
}

func TestInvalidID(t *testing.T) {
	h := newTestRouter(t)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPatch, "/api/reports/abc", `{}`},
		{http.MethodPatch, "/api/reports/abc/complete", ""},
		{http.MethodDelete, "/api/reports/1.5", ""},
	} {
		rec := do(t, h, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		assert.Equal(t, "Invalid ID", decodeError(t, rec)["message"])
	}
}

func TestUpdateValidation(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)

	rec := do(t, h, http.MethodPatch, "/api/reports/1", `{"status":"done"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", decodeError(t, rec)["field"])
}

func TestStatsAndZones(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPatch, "/api/reports/1/complete", "").Code)

	rec := do(t, h, http.MethodGet, "/api/reports/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Total          int     `json:"total"`
		Completed      int     `json:"completed"`
		CompletionRate float64 `json:"completionRate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 100.0, stats.CompletionRate)

	rec = do(t, h, http.MethodGet, "/api/zones", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var zones []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zones))
	assert.Equal(t, models.Zones, zones)
}

func TestExport(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)

	rec := do(t, h, http.MethodGet, "/api/reports/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "splicing_reports_20251215_091500.xlsx")
	assert.NotZero(t, rec.Body.Len())

	rec = do(t, h, http.MethodGet, "/api/reports/export?format=csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1,SCT,CH001"))

	rec = do(t, h, http.MethodGet, "/api/reports/export?format=pdf", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "format", decodeError(t, rec)["field"])
}

func TestArchiveExport(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)

	rec := do(t, h, http.MethodPost, "/api/reports/export/archive", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var archive struct {
		Name  string `json:"name"`
		URL   string `json:"url"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &archive))
	assert.Equal(t, 1, archive.Count)
	assert.Equal(t, "/exports/"+archive.Name, archive.URL)

	rec = do(t, h, http.MethodGet, archive.URL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotZero(t, rec.Body.Len())
}

func TestGeoJSON(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)

	rec := do(t, h, http.MethodGet, "/api/reports/geojson", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{101.6869, 3.139}, fc.Features[0].Geometry.Coordinates)
}

func TestGeoJSONIgnoresUnparseableCoordinates(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", createBody).Code)
	nanBody := strings.Replace(createBody, "3.1390, 101.6869", "NaN, 0", 1)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/reports", nanBody).Code)

	rec := do(t, h, http.MethodGet, "/api/reports/geojson", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fc struct {
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Len(t, fc.Features, 1)
}

func TestOperationalEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeError(t, rec)["status"])

	rec = do(t, h, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, path := range []string{
		"/api/reports/{id}/complete", "/api/reports/export", "/api/reports/export/archive",
		"/api/reports/geojson", "/api/zones",
	} {
		assert.Contains(t, rec.Body.String(), `"`+path+`"`)
	}

	do(t, h, http.MethodGet, "/api/reports", "")
	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `splicing_http_requests_total{method="GET",path="/api/reports",status="200"}`)
}

func TestPreflight(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodOptions, "/api/reports/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	svc := services.NewReportService(repos.NewMemoryReportStore(), zap.NewNop())
	h := RegisterRoutes(handlers.NewReportHandler(svc, storage.NewLocalExportStore(t.TempDir(), "/exports"), zap.NewNop()),
		Options{StaticDir: dir}, zap.NewNop())

	rec := do(t, h, http.MethodGet, "/app.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")

	rec = do(t, h, http.MethodGet, "/reports/new", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")

	rec = do(t, h, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
