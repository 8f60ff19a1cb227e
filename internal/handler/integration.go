package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/msomdec/knit-designer/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// IntegrationHandler serves the stitch-repeat fitter, both standalone and
// against a session's chosen stitch pattern.
type IntegrationHandler struct {
	definitions *service.DefinitionService
}

// NewIntegrationHandler creates a new IntegrationHandler.
func NewIntegrationHandler(definitions *service.DefinitionService) *IntegrationHandler {
	return &IntegrationHandler{definitions: definitions}
}

// HandleAnalyze runs the fitter on an explicit request.
// POST /api/integration/analyze
// Request:  {"targetStitchCount":100,"repeatWidth":8,"desiredEdgeStitchesPerSide":2}
// Response: {"analysis": {...}}
func (h *IntegrationHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req domain.IntegrationRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	analysis, err := service.AnalyzeIntegration(req)
	if err != nil {
		writeServiceError(w, "analyze integration", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analysis": analysis})
}

type sessionIntegrationRequest struct {
	TargetStitchCount   int               `json:"targetStitchCount"`
	EdgeStitchesPerSide int               `json:"edgeStitchesPerSide"`
	Option              domain.OptionKind `json:"option"`
}

// HandleSessionAnalyze fits the session's stitch pattern into a target width.
// POST /api/sessions/{id}/integration
// Request:  {"targetStitchCount":100,"edgeStitchesPerSide":2}
func (h *IntegrationHandler) HandleSessionAnalyze(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req sessionIntegrationRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	analysis, err := h.definitions.AnalyzeIntegration(r.Context(), user.ID, r.PathValue("id"), req.TargetStitchCount, req.EdgeStitchesPerSide)
	if err != nil {
		writeServiceError(w, "analyze session integration", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analysis": analysis})
}

// HandleSessionApply records one of the offered options on the session.
// POST /api/sessions/{id}/integration/apply
// Request:  {"targetStitchCount":100,"edgeStitchesPerSide":2,"option":"plain-panel"}
func (h *IntegrationHandler) HandleSessionApply(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req sessionIntegrationRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.definitions.ApplyIntegration(r.Context(), user.ID, r.PathValue("id"), req.TargetStitchCount, req.EdgeStitchesPerSide, req.Option)
	if err != nil {
		writeServiceError(w, "apply integration", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toSessionDTO(session)})
}

// HandlePreview reads the fitter inputs from datastar signals and patches
// the options fragment.
// POST /integration/preview
func (h *IntegrationHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req domain.IntegrationRequest
	if err := datastar.ReadSignals(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid signals.")
		return
	}

	analysis, err := service.AnalyzeIntegration(req)
	var errMsg string
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidRequest) {
			slog.Error("preview integration", "error", err)
		}
		errMsg = err.Error()
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.IntegrationOptions(analysis, errMsg),
		datastar.WithSelectorID(view.IntegrationOptionsID),
	)
}
