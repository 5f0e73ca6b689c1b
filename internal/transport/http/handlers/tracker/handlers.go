package trackerhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"worklog/internal/domain/scoring"
	"worklog/internal/domain/tracker"
	"worklog/internal/transport/http/api"
	"worklog/internal/transport/http/middleware"
	"worklog/internal/transport/http/shared"
)

type Handler struct {
	Service *tracker.Service
}

func NewHandler(service *tracker.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.handleListCategories)
		r.Post("/", h.handleCreateCategory)
		r.Put("/{categoryID}", h.handleUpdateCategory)
		r.Delete("/{categoryID}", h.handleDeleteCategory)
	})
	r.Route("/logs", func(r chi.Router) {
		r.Get("/", h.handleListLogs)
		r.Post("/", h.handleUpsertLog)
		r.Delete("/{logID}", h.handleDeleteLog)
	})
	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.handleListTemplates)
		r.Post("/", h.handleCreateTemplate)
		r.Post("/apply", h.handleApplyTemplates)
	})
	r.Route("/expectations", func(r chi.Router) {
		r.Get("/", h.handleGetExpectations)
		r.Put("/", h.handlePutExpectations)
	})
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategories(r.Context())
	if err != nil {
		slog.Warn("category list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "category_list_failed", "failed to list categories", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, categories, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name               string `json:"name"`
		ScorePerOccurrence int    `json:"scorePerOccurrence"`
		Dimension          string `json:"dimension"`
		Description        string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Enum("dimension", payload.Dimension, scoring.Dimensions, "must be one of input, output, outcome, impact")
	v.Required("dimension", payload.Dimension, "dimension is required")
	v.Positive("scorePerOccurrence", payload.ScorePerOccurrence, "must be a positive score")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateCategory(r.Context(), tracker.WorkCategory{
		Name:               strings.TrimSpace(payload.Name),
		ScorePerOccurrence: payload.ScorePerOccurrence,
		Dimension:          payload.Dimension,
		Description:        payload.Description,
	})
	if err != nil {
		slog.Warn("category create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "category_create_failed", "failed to create category", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name               string `json:"name"`
		ScorePerOccurrence int    `json:"scorePerOccurrence"`
		Dimension          string `json:"dimension"`
		Description        string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Enum("dimension", payload.Dimension, scoring.Dimensions, "must be one of input, output, outcome, impact")
	v.Required("dimension", payload.Dimension, "dimension is required")
	v.Positive("scorePerOccurrence", payload.ScorePerOccurrence, "must be a positive score")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Service.UpdateCategory(r.Context(), tracker.WorkCategory{
		ID:                 chi.URLParam(r, "categoryID"),
		Name:               strings.TrimSpace(payload.Name),
		ScorePerOccurrence: payload.ScorePerOccurrence,
		Dimension:          payload.Dimension,
		Description:        payload.Description,
	})
	if errors.Is(err, tracker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "category_not_found", "category not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("category update failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "category_update_failed", "failed to update category", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID"))
	if errors.Is(err, tracker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "category_not_found", "category not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("category delete failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "category_delete_failed", "failed to delete category", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	week := strings.TrimSpace(r.URL.Query().Get("week"))
	v := shared.NewValidator()
	v.Required("week", week, "week query parameter is required")
	if week != "" {
		v.Week("week", week)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	logs, err := h.Service.ListLogs(r.Context(), week)
	if err != nil {
		slog.Warn("log list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "log_list_failed", "failed to list logs", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, logs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpsertLog(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CategoryID    string `json:"categoryId"`
		Week          string `json:"week"`
		Count         int    `json:"count"`
		OverrideScore *int   `json:"overrideScore"`
		Reference     string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("categoryId", payload.CategoryID, "categoryId is required")
	v.Required("week", payload.Week, "week is required")
	if payload.Week != "" {
		v.Week("week", payload.Week)
	}
	v.NonNegative("count", payload.Count, "must be zero or more")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.UpsertLog(r.Context(), tracker.WeeklyLog{
		CategoryID:    payload.CategoryID,
		Week:          strings.TrimSpace(payload.Week),
		Count:         payload.Count,
		OverrideScore: payload.OverrideScore,
		Reference:     payload.Reference,
	})
	if err != nil {
		slog.Warn("log upsert failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "log_upsert_failed", "failed to record log entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteLog(r.Context(), chi.URLParam(r, "logID"))
	if errors.Is(err, tracker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "log_not_found", "log entry not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("log delete failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "log_delete_failed", "failed to delete log entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	role, level, ok := roleLevelQuery(w, r)
	if !ok {
		return
	}
	templates, err := h.Service.ListTemplates(r.Context(), role, level)
	if err != nil {
		slog.Warn("template list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "template_list_failed", "failed to list templates", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, templates, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role                string  `json:"role"`
		Level               int     `json:"level"`
		CategoryName        string  `json:"categoryName"`
		Dimension           string  `json:"dimension"`
		ScorePerOccurrence  int     `json:"scorePerOccurrence"`
		ExpectedWeeklyCount float64 `json:"expectedWeeklyCount"`
		Description         string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("role", payload.Role, "role is required")
	v.Required("categoryName", payload.CategoryName, "categoryName is required")
	v.Enum("dimension", payload.Dimension, scoring.Dimensions, "must be one of input, output, outcome, impact")
	v.Required("dimension", payload.Dimension, "dimension is required")
	v.Positive("level", payload.Level, "must be a positive level")
	v.Positive("scorePerOccurrence", payload.ScorePerOccurrence, "must be a positive score")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateTemplate(r.Context(), tracker.CategoryTemplate{
		Role:                payload.Role,
		Level:               payload.Level,
		CategoryName:        strings.TrimSpace(payload.CategoryName),
		Dimension:           payload.Dimension,
		ScorePerOccurrence:  payload.ScorePerOccurrence,
		ExpectedWeeklyCount: payload.ExpectedWeeklyCount,
		Description:         payload.Description,
	})
	if err != nil {
		slog.Warn("template create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "template_create_failed", "failed to create template", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApplyTemplates(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role  string `json:"role"`
		Level int    `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("role", payload.Role, "role is required")
	v.Positive("level", payload.Level, "must be a positive level")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.ApplyTemplates(r.Context(), payload.Role, payload.Level)
	if err != nil {
		slog.Warn("template apply failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "template_apply_failed", "failed to apply templates", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"created": created}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetExpectations(w http.ResponseWriter, r *http.Request) {
	role, level, ok := roleLevelQuery(w, r)
	if !ok {
		return
	}
	expectations, err := h.Service.Expectations(r.Context(), role, level)
	if err != nil {
		slog.Warn("expectation fetch failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "expectation_fetch_failed", "failed to fetch expectations", middleware.GetRequestID(r.Context()))
		return
	}
	if expectations == nil {
		expectations = []string{}
	}
	api.Success(w, map[string]any{"role": role, "level": level, "expectations": expectations}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePutExpectations(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role         string   `json:"role"`
		Level        int      `json:"level"`
		Expectations []string `json:"expectations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("role", payload.Role, "role is required")
	v.Positive("level", payload.Level, "must be a positive level")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Service.PutExpectations(r.Context(), tracker.LevelExpectation{
		Role:         payload.Role,
		Level:        payload.Level,
		Expectations: payload.Expectations,
	})
	if err != nil {
		slog.Warn("expectation save failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "expectation_save_failed", "failed to save expectations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "saved"}, middleware.GetRequestID(r.Context()))
}

func roleLevelQuery(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	levelRaw := strings.TrimSpace(r.URL.Query().Get("level"))
	level, convErr := strconv.Atoi(levelRaw)

	v := shared.NewValidator()
	v.Required("role", role, "role query parameter is required")
	if levelRaw == "" {
		v.Add("level", "level query parameter is required")
	} else if convErr != nil || level < 1 {
		v.Add("level", "must be a positive integer")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return "", 0, false
	}
	return role, level, true
}
