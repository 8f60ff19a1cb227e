package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/schemas"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/msomdec/knit-designer/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

const maxSnapshotBytes = 1 << 20

// DefinitionHandler serves pattern-definition sessions.
type DefinitionHandler struct {
	definitions *service.DefinitionService
}

// NewDefinitionHandler creates a new DefinitionHandler.
func NewDefinitionHandler(definitions *service.DefinitionService) *DefinitionHandler {
	return &DefinitionHandler{definitions: definitions}
}

// HandleList returns the user's sessions.
// GET /api/sessions
func (h *DefinitionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	sessions, err := h.definitions.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "list sessions", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": toSessionSummaryDTOs(sessions)})
}

// HandleStart creates a session for a garment type.
// POST /api/sessions
// Request:  {"name":"...","garmentType":"sweater"}
func (h *DefinitionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Name        string `json:"name"`
		GarmentType string `json:"garmentType"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.definitions.Start(r.Context(), user.ID, req.Name, domain.GarmentType(req.GarmentType))
	if err != nil {
		writeServiceError(w, "start session", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"session": toSessionDTO(session)})
}

// HandleGet returns a session with its snapshot.
// GET /api/sessions/{id}
func (h *DefinitionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	session, err := h.definitions.GetByID(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toSessionDTO(session)})
}

// HandleDelete removes a session.
// DELETE /api/sessions/{id}
func (h *DefinitionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.definitions.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, "delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateSnapshot replaces the session snapshot. The body is checked
// against the snapshot schema before it is decoded.
// PUT /api/sessions/{id}/snapshot
// Request:  a session snapshot document
func (h *DefinitionHandler) HandleUpdateSnapshot(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := schemas.ValidateSnapshot(raw); err != nil {
		writeServiceError(w, "validate snapshot", err)
		return
	}

	var snapshot domain.SessionSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.definitions.UpdateSnapshot(r.Context(), user.ID, r.PathValue("id"), &snapshot)
	if err != nil {
		writeServiceError(w, "update snapshot", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toSessionDTO(session)})
}

// HandleReset clears every section except the garment type.
// POST /api/sessions/{id}/reset
func (h *DefinitionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	session, err := h.definitions.Reset(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "reset session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toSessionDTO(session)})
}

// HandleReadiness evaluates the session.
// GET /api/sessions/{id}/readiness
// Response: {"steps":[...],"completedSteps":[...],"completionPercentage":80,"readyForCalculation":true}
func (h *DefinitionHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	summary, steps, err := h.definitions.Readiness(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "evaluate readiness", err)
		return
	}
	writeJSON(w, http.StatusOK, ReadinessDTO{Steps: steps, CompletionSummary: summary})
}

// HandlePrepared returns the snapshot with defaults applied. Sessions below
// the readiness threshold get 409.
// GET /api/sessions/{id}/prepared
func (h *DefinitionHandler) HandlePrepared(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	snapshot, err := h.definitions.Prepare(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "prepare session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshot": snapshot})
}

// HandleReadinessPanel patches the readiness panel over SSE.
// GET /sessions/{id}/readiness-panel
func (h *DefinitionHandler) HandleReadinessPanel(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	summary, steps, err := h.definitions.Readiness(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "evaluate readiness", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.ReadinessPanel(summary, steps),
		datastar.WithSelectorID(view.ReadinessPanelID),
	)
}
