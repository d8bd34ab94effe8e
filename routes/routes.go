package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	_ "p9e.in/splicing/docs"
	"p9e.in/splicing/handlers"
	"p9e.in/splicing/middleware"
)

// Options carries the settings that shape the route table.
type Options struct {
	// StaticDir holds the built dashboard. Empty disables static serving.
	StaticDir string
	// ExportDir is served under /exports/ when exports are kept on disk.
	ExportDir string
	// CORSAllowedOrigin is sent as Access-Control-Allow-Origin.
	CORSAllowedOrigin string
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(h *handlers.ReportHandler, opts Options, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	// =====================================================
	// Report API
	// =====================================================
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/reports", h.ListReports).Methods("GET")
	api.HandleFunc("/reports", h.CreateReport).Methods("POST")

	// Fixed paths go before /reports/{id}
	api.HandleFunc("/reports/stats", h.GetReportStats).Methods("GET")
	api.HandleFunc("/reports/export", h.ExportReports).Methods("GET")
	api.HandleFunc("/reports/export/archive", h.ArchiveReports).Methods("POST")
	api.HandleFunc("/reports/geojson", h.GetReportsGeoJSON).Methods("GET")

	api.HandleFunc("/reports/{id}", h.UpdateReport).Methods("PATCH")
	api.HandleFunc("/reports/{id}", h.DeleteReport).Methods("DELETE")
	api.HandleFunc("/reports/{id}/complete", h.CompleteReport).Methods("PATCH")

	api.HandleFunc("/zones", handlers.ListZones).Methods("GET")

	// =====================================================
	// Operations
	// =====================================================
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")

	if opts.ExportDir != "" {
		r.PathPrefix("/exports/").Handler(
			http.StripPrefix("/exports/", http.FileServer(http.Dir(opts.ExportDir))),
		)
	}

	if opts.StaticDir != "" {
		logger.Info("serving dashboard", zap.String("dir", opts.StaticDir))
		r.PathPrefix("/").Handler(spaHandler{dir: opts.StaticDir})
	}

	var handler http.Handler = r
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.CORS(opts.CORSAllowedOrigin)(handler)
	handler = middleware.RequestID(handler)
	return handler
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, "swagger document unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

// spaHandler serves files from dir and falls back to index.html so the
// dashboard's client-side routes load on refresh.
type spaHandler struct {
	dir string
}

func (s spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}
	path := filepath.Join(s.dir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
}
