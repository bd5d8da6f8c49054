package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/crucial707/cronlens/internal/metrics"
	"github.com/crucial707/cronlens/internal/middleware"
	"github.com/crucial707/cronlens/internal/models"
	"github.com/crucial707/cronlens/internal/recurrence"
	"github.com/crucial707/cronlens/internal/repo"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

// pqUniqueViolation is the postgres error code for a unique constraint failure.
const pqUniqueViolation = "23505"

// PresetHandler handles recurrence preset CRUD.
type PresetHandler struct {
	Repo *repo.PresetRepo
}

type presetInput struct {
	Name   string            `json:"name" validate:"required,max=100"`
	Config recurrence.Config `json:"config"`
}

// PresetList is the paginated list response.
type PresetList struct {
	Items  []models.Preset `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func decodePresetInput(w http.ResponseWriter, r *http.Request) (presetInput, bool) {
	in := presetInput{Config: recurrence.DefaultConfig()}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return in, false
	}
	in.Name = strings.TrimSpace(in.Name)
	if fields := validationFields(in); fields != nil {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return in, false
	}
	return in, true
}

func presetID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		JSONError(w, "invalid preset id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func describe(p *models.Preset) {
	p.Describe()
	metrics.IncDescription(string(p.Config.Pattern))
}

// ListPresets returns paginated presets (query: limit, offset), each with its description.
func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}

	list, err := h.Repo.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list presets", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	total, err := h.Repo.Count(r.Context())
	if err != nil {
		slog.Error("count presets", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	for i := range list {
		describe(&list[i])
	}

	writeJSON(w, http.StatusOK, PresetList{Items: list, Total: total, Limit: limit, Offset: offset})
}

// GetPreset returns one preset by id.
func (h *PresetHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	id, ok := presetID(w, r)
	if !ok {
		return
	}

	p, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("get preset", "id", id, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if p == nil {
		JSONError(w, "preset not found", http.StatusNotFound)
		return
	}

	describe(p)
	writeJSON(w, http.StatusOK, p)
}

// CreatePreset stores a new preset. Body: {"name": "...", "config": {...}}.
func (h *PresetHandler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	in, ok := decodePresetInput(w, r)
	if !ok {
		return
	}

	p, err := h.Repo.Create(r.Context(), in.Name, in.Config)
	if err != nil {
		if isUniqueViolation(err) {
			JSONError(w, "preset name already exists", http.StatusConflict)
			return
		}
		slog.Error("create preset", "name", in.Name, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	slog.Info("preset created", "id", p.ID, "name", p.Name, "subject", middleware.Subject(r.Context()))
	describe(p)
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePreset replaces a preset's name and config.
func (h *PresetHandler) UpdatePreset(w http.ResponseWriter, r *http.Request) {
	id, ok := presetID(w, r)
	if !ok {
		return
	}
	in, ok := decodePresetInput(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Update(r.Context(), id, in.Name, in.Config); err != nil {
		switch {
		case errors.Is(err, repo.ErrPresetNotFound):
			JSONError(w, "preset not found", http.StatusNotFound)
		case isUniqueViolation(err):
			JSONError(w, "preset name already exists", http.StatusConflict)
		default:
			slog.Error("update preset", "id", id, "error", err)
			JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		}
		return
	}

	p, err := h.Repo.GetByID(r.Context(), id)
	if err != nil || p == nil {
		slog.Error("reload preset", "id", id, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	slog.Info("preset updated", "id", id, "subject", middleware.Subject(r.Context()))
	describe(p)
	writeJSON(w, http.StatusOK, p)
}

// DeletePreset deletes a preset.
func (h *PresetHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	id, ok := presetID(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrPresetNotFound) {
			JSONError(w, "preset not found", http.StatusNotFound)
			return
		}
		slog.Error("delete preset", "id", id, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	slog.Info("preset deleted", "id", id, "subject", middleware.Subject(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
