package reportshandler

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"worklog/internal/domain/reports"
	"worklog/internal/transport/http/api"
	"worklog/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Now     func() time.Time
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/evaluation", h.handleGenerateEvaluation)
		r.Get("/evaluation.pdf", h.handleDownloadEvaluation)
	})
}

func (h *Handler) handleDownloadEvaluation(w http.ResponseWriter, r *http.Request) {
	path, err := h.Service.GenerateEvaluationPDF(r.Context(), h.Now())
	if err != nil {
		slog.Warn("evaluation report failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_generate_failed", "failed to generate evaluation report", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (h *Handler) handleGenerateEvaluation(w http.ResponseWriter, r *http.Request) {
	path, err := h.Service.GenerateEvaluationPDF(r.Context(), h.Now())
	if err != nil {
		slog.Warn("evaluation report failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_generate_failed", "failed to generate evaluation report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{
		"path":     path,
		"fileName": filepath.Base(path),
	}, middleware.GetRequestID(r.Context()))
}
