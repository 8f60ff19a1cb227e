package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
)

// StitchPatternHandler serves the stitch pattern catalog.
type StitchPatternHandler struct {
	catalog *service.StitchPatternService
}

// NewStitchPatternHandler creates a new StitchPatternHandler.
func NewStitchPatternHandler(catalog *service.StitchPatternService) *StitchPatternHandler {
	return &StitchPatternHandler{catalog: catalog}
}

// HandleList returns predefined patterns and the user's custom ones.
// GET /api/stitch-patterns?category=rib&search=seed
// Response: {"predefined": [...], "custom": [...]}
func (h *StitchPatternHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	predefined, err := h.catalog.ListPredefined(r.Context())
	if err != nil {
		writeServiceError(w, "list predefined stitch patterns", err)
		return
	}
	custom, err := h.catalog.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "list custom stitch patterns", err)
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	writeJSON(w, http.StatusOK, map[string]any{
		"predefined": toStitchPatternDTOs(filterStitchPatterns(predefined, category, search)),
		"custom":     toStitchPatternDTOs(filterStitchPatterns(custom, category, search)),
	})
}

// HandleGet returns one visible stitch pattern.
// GET /api/stitch-patterns/{id}
func (h *StitchPatternHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stitch pattern ID.")
		return
	}

	ref, err := h.catalog.Visible(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, "get stitch pattern", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stitchPattern": toStitchPatternDTO(*ref)})
}

// HandleCreate adds a custom stitch pattern.
// POST /api/stitch-patterns
// Request:  {"name":"...","category":"...","description":"...","repeatWidth":4,"repeatHeight":2}
func (h *StitchPatternHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Name         string `json:"name"`
		Category     string `json:"category"`
		Description  string `json:"description"`
		RepeatWidth  int    `json:"repeatWidth"`
		RepeatHeight int    `json:"repeatHeight"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ref := &domain.StitchPatternRef{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		RepeatWidth:  req.RepeatWidth,
		RepeatHeight: req.RepeatHeight,
	}
	if err := h.catalog.CreateCustom(r.Context(), user.ID, ref); err != nil {
		writeServiceError(w, "create stitch pattern", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"stitchPattern": toStitchPatternDTO(*ref)})
}

// HandleDelete removes one of the user's custom stitch patterns.
// DELETE /api/stitch-patterns/{id}
func (h *StitchPatternHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stitch pattern ID.")
		return
	}

	if err := h.catalog.DeleteCustom(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, "delete stitch pattern", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filterStitchPatterns(patterns []domain.StitchPatternRef, category, search string) []domain.StitchPatternRef {
	if category == "" && search == "" {
		return patterns
	}

	search = strings.ToLower(search)
	filtered := []domain.StitchPatternRef{}
	for _, p := range patterns {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
