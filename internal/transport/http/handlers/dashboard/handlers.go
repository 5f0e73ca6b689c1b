package dashboardhandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"worklog/internal/domain/dashboard"
	"worklog/internal/transport/http/api"
	"worklog/internal/transport/http/middleware"
	"worklog/internal/transport/http/shared"
)

type Handler struct {
	Service *dashboard.Service
	Now     func() time.Time
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/evaluation", h.handleEvaluation)
		r.Get("/insights", h.handleInsights)
		r.Get("/coverage", h.handleCoverage)
	})
}

// asOf resolves the optional asOf query parameter, defaulting to now.
func (h *Handler) asOf(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("asOf"))
	if raw == "" {
		return h.Now(), true
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil || parsed.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "asOf must be a date in YYYY-MM-DD format", middleware.GetRequestID(r.Context()))
		return time.Time{}, false
	}
	return parsed, true
}

func (h *Handler) handleEvaluation(w http.ResponseWriter, r *http.Request) {
	now, ok := h.asOf(w, r)
	if !ok {
		return
	}
	evaluation, err := h.Service.Evaluation(r.Context(), now)
	if err != nil {
		slog.Warn("evaluation failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "evaluation_failed", "failed to compute evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluation, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	now, ok := h.asOf(w, r)
	if !ok {
		return
	}
	evaluation, err := h.Service.Evaluation(r.Context(), now)
	if err != nil {
		slog.Warn("insights failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "insights_failed", "failed to compute insights", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"weeks":    evaluation.Weeks,
		"insights": evaluation.Insights,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCoverage(w http.ResponseWriter, r *http.Request) {
	now, ok := h.asOf(w, r)
	if !ok {
		return
	}
	coverage, err := h.Service.Coverage(r.Context(), now)
	if errors.Is(err, dashboard.ErrNoActiveProfile) {
		api.Fail(w, http.StatusConflict, "no_active_profile", "set an active user profile before requesting coverage", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("coverage failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "coverage_failed", "failed to compute coverage", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, coverage, middleware.GetRequestID(r.Context()))
}
