package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"p9e.in/splicing/middleware"
	"p9e.in/splicing/models"
	"p9e.in/splicing/services"
	"p9e.in/splicing/storage"
)

// maxBodyBytes caps request bodies; report payloads are a few hundred bytes.
const maxBodyBytes = 1 << 20

// ReportHandler serves the /api/reports endpoints.
type ReportHandler struct {
	service *services.ReportService
	exports storage.ExportStore
	logger  *zap.Logger
}

func NewReportHandler(service *services.ReportService, exports storage.ExportStore, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{service: service, exports: exports, logger: logger}
}

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError is the only place lifecycle errors become status codes.
func (h *ReportHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: ve.Message, Field: ve.Field})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Report not found"})
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Internal Server Error"})
	}
}

// reportID parses the {id} route variable. It writes the 400 response itself
// and returns false when the id is not an integer.
func reportID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid ID"})
		return 0, false
	}
	return id, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &models.ValidationError{Message: "Invalid JSON body"}
	}
	return body, nil
}
