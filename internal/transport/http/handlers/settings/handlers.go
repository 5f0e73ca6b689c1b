package settingshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worklog/internal/domain/settings"
	"worklog/internal/transport/http/api"
	"worklog/internal/transport/http/middleware"
	"worklog/internal/transport/http/shared"
)

type Handler struct {
	Service *settings.Service
}

func NewHandler(service *settings.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Route("/weight-profiles", func(r chi.Router) {
			r.Get("/", h.handleListWeightProfiles)
			r.Post("/", h.handleCreateWeightProfile)
			r.Put("/{profileID}", h.handleUpdateWeightProfile)
			r.Delete("/{profileID}", h.handleDeleteWeightProfile)
			r.Post("/{profileID}/activate", h.handleActivateWeightProfile)
		})
		r.Route("/targets", func(r chi.Router) {
			r.Get("/", h.handleListTargets)
			r.Post("/", h.handleCreateTarget)
			r.Put("/{targetID}", h.handleUpdateTarget)
			r.Delete("/{targetID}", h.handleDeleteTarget)
			r.Post("/{targetID}/activate", h.handleActivateTarget)
		})
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", h.handleListUserProfiles)
			r.Post("/", h.handleCreateUserProfile)
			r.Post("/{profileID}/activate", h.handleActivateUserProfile)
		})
	})
}

type weightProfilePayload struct {
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Level         int     `json:"level"`
	InputWeight   float64 `json:"inputWeight"`
	OutputWeight  float64 `json:"outputWeight"`
	OutcomeWeight float64 `json:"outcomeWeight"`
	ImpactWeight  float64 `json:"impactWeight"`
}

func (p weightProfilePayload) toModel(id string) settings.RoleWeightProfile {
	return settings.RoleWeightProfile{
		ID:            id,
		Name:          p.Name,
		Role:          p.Role,
		Level:         p.Level,
		InputWeight:   p.InputWeight,
		OutputWeight:  p.OutputWeight,
		OutcomeWeight: p.OutcomeWeight,
		ImpactWeight:  p.ImpactWeight,
	}
}

func (h *Handler) handleListWeightProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.ListWeightProfiles(r.Context())
	if err != nil {
		slog.Warn("weight profile list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "weight_profile_list_failed", "failed to list weight profiles", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, profiles, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateWeightProfile(w http.ResponseWriter, r *http.Request) {
	var payload weightProfilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateWeightProfile(r.Context(), payload.toModel(""))
	if err != nil {
		if writeSettingsValidation(w, r, err) {
			return
		}
		slog.Warn("weight profile create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "weight_profile_create_failed", "failed to create weight profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateWeightProfile(w http.ResponseWriter, r *http.Request) {
	var payload weightProfilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.UpdateWeightProfile(r.Context(), payload.toModel(chi.URLParam(r, "profileID")))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "weight_profile_not_found", "weight profile not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		if writeSettingsValidation(w, r, err) {
			return
		}
		slog.Warn("weight profile update failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "weight_profile_update_failed", "failed to update weight profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteWeightProfile(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteWeightProfile(r.Context(), chi.URLParam(r, "profileID"))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "weight_profile_not_found", "weight profile not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("weight profile delete failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "weight_profile_delete_failed", "failed to delete weight profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivateWeightProfile(w http.ResponseWriter, r *http.Request) {
	err := h.Service.SetActiveWeightProfile(r.Context(), chi.URLParam(r, "profileID"))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "weight_profile_not_found", "weight profile not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("weight profile activate failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "weight_profile_activate_failed", "failed to activate weight profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "activated"}, middleware.GetRequestID(r.Context()))
}

type targetPayload struct {
	Name                     string `json:"name"`
	Role                     string `json:"role"`
	Level                    int    `json:"level"`
	OutstandingThreshold     int    `json:"outstandingThreshold"`
	StrongThreshold          int    `json:"strongThreshold"`
	MeetingThreshold         int    `json:"meetingThreshold"`
	PartialThreshold         int    `json:"partialThreshold"`
	UnderperformingThreshold int    `json:"underperformingThreshold"`
	TimePeriodWeeks          int    `json:"timePeriodWeeks"`
}

func (p targetPayload) toModel(id string) settings.PerformanceTarget {
	return settings.PerformanceTarget{
		ID:                       id,
		Name:                     p.Name,
		Role:                     p.Role,
		Level:                    p.Level,
		OutstandingThreshold:     p.OutstandingThreshold,
		StrongThreshold:          p.StrongThreshold,
		MeetingThreshold:         p.MeetingThreshold,
		PartialThreshold:         p.PartialThreshold,
		UnderperformingThreshold: p.UnderperformingThreshold,
		TimePeriodWeeks:          p.TimePeriodWeeks,
	}
}

func (h *Handler) handleListTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := h.Service.ListTargets(r.Context())
	if err != nil {
		slog.Warn("target list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "target_list_failed", "failed to list targets", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, targets, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTarget(w http.ResponseWriter, r *http.Request) {
	var payload targetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateTarget(r.Context(), payload.toModel(""))
	if err != nil {
		if writeSettingsValidation(w, r, err) {
			return
		}
		slog.Warn("target create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "target_create_failed", "failed to create target", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	var payload targetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.UpdateTarget(r.Context(), payload.toModel(chi.URLParam(r, "targetID")))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "target_not_found", "target not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		if writeSettingsValidation(w, r, err) {
			return
		}
		slog.Warn("target update failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "target_update_failed", "failed to update target", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteTarget(r.Context(), chi.URLParam(r, "targetID"))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "target_not_found", "target not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("target delete failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "target_delete_failed", "failed to delete target", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivateTarget(w http.ResponseWriter, r *http.Request) {
	err := h.Service.SetActiveTarget(r.Context(), chi.URLParam(r, "targetID"))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "target_not_found", "target not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("target activate failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "target_activate_failed", "failed to activate target", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "activated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListUserProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.ListUserProfiles(r.Context())
	if err != nil {
		slog.Warn("user profile list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "user_profile_list_failed", "failed to list user profiles", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, profiles, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateUserProfile(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role  string `json:"role"`
		Level int    `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.CreateUserProfile(r.Context(), settings.UserProfile{Role: payload.Role, Level: payload.Level})
	if err != nil {
		if writeSettingsValidation(w, r, err) {
			return
		}
		slog.Warn("user profile create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "user_profile_create_failed", "failed to create user profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivateUserProfile(w http.ResponseWriter, r *http.Request) {
	err := h.Service.SetActiveUserProfile(r.Context(), chi.URLParam(r, "profileID"))
	if errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "user_profile_not_found", "user profile not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		slog.Warn("user profile activate failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "user_profile_activate_failed", "failed to activate user profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "activated"}, middleware.GetRequestID(r.Context()))
}

// writeSettingsValidation maps domain validation errors to a 400 with the
// underlying message; returns false for anything else.
func writeSettingsValidation(w http.ResponseWriter, r *http.Request, err error) bool {
	for _, sentinel := range []error{
		settings.ErrWeightSum,
		settings.ErrWeightRange,
		settings.ErrThresholdOrder,
		settings.ErrTimePeriod,
		settings.ErrUnknownRole,
		settings.ErrLevelOutOfRange,
	} {
		if errors.Is(err, sentinel) {
			api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), middleware.GetRequestID(r.Context()))
			return true
		}
	}
	return false
}
