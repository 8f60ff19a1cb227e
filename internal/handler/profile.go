package handler

import (
	"encoding/json"
	"net/http"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
)

// ProfileHandler serves saved gauge, measurement and yarn profiles.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleList returns the user's profiles.
// GET /api/profiles?kind=gauge
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	kind := domain.ProfileKind(r.URL.Query().Get("kind"))
	profiles, err := h.profiles.ListByUser(r.Context(), user.ID, kind)
	if err != nil {
		writeServiceError(w, "list profiles", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": toProfileDTOs(profiles)})
}

// HandleGet returns one of the user's profiles.
// GET /api/profiles/{id}
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	p, err := h.profiles.GetByID(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": toProfileDTO(p)})
}

// HandleCreate saves a new profile.
// POST /api/profiles
// Request:  {"kind":"gauge","name":"...","data":{...}}
func (h *ProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Kind string          `json:"kind"`
		Name string          `json:"name"`
		Data json.RawMessage `json:"data"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.profiles.Create(r.Context(), user.ID, domain.ProfileKind(req.Kind), req.Name, req.Data)
	if err != nil {
		writeServiceError(w, "create profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"profile": toProfileDTO(p)})
}

// HandleDelete removes one of the user's profiles.
// DELETE /api/profiles/{id}
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.profiles.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, "delete profile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
