package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"projectcenter/internal/middleware"
	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
	"projectcenter/internal/tracker"
)

// DraftHandler serves the project editor. Edits accumulate on a draft and
// reach the store and the change log only on save.
type DraftHandler struct {
	tracker   *tracker.Tracker
	validator *validator.Validate
}

func NewDraftHandler(t *tracker.Tracker) *DraftHandler {
	return &DraftHandler{tracker: t, validator: validator.New()}
}

// @Tags Drafts
// @Summary Open an edit draft
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 201 {object} tracker.Draft
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/projects/{id}/drafts [post]
func (h *DraftHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	d, err := h.tracker.OpenDraft(middleware.Email(r.Context()), id)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// @Tags Drafts
// @Summary Get a draft
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} tracker.Draft
// @Router /api/v1/drafts/{draftID} [get]
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.tracker.Draft(middleware.Email(r.Context()), chi.URLParam(r, "draftID"))
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// @Tags Drafts
// @Summary Edit draft fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param body body models.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} tracker.Draft
// @Router /api/v1/drafts/{draftID} [patch]
func (h *DraftHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	d, err := h.tracker.UpdateDraft(middleware.Email(r.Context()), chi.URLParam(r, "draftID"), req)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// @Tags Drafts
// @Summary Discard a draft
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/drafts/{draftID} [delete]
func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.DiscardDraft(middleware.Email(r.Context()), chi.URLParam(r, "draftID")); err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Draft discarded")
}

// @Tags Drafts
// @Summary Advance a milestone one step
// @Description not_started -> started -> stuck -> completed -> not_started
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param stage path string true "design, mat, fab, fat or ship"
// @Success 200 {object} tracker.Draft
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/drafts/{draftID}/milestones/{stage}/advance [post]
func (h *DraftHandler) AdvanceMilestone(w http.ResponseWriter, r *http.Request) {
	stage, err := milestone.ParseStage(chi.URLParam(r, "stage"))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	d, err := h.tracker.AdvanceMilestone(middleware.Email(r.Context()), chi.URLParam(r, "draftID"), stage)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// @Tags Drafts
// @Summary Add a punch list item
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param body body models.AddPunchItemRequest true "Item"
// @Success 200 {object} tracker.Draft
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/drafts/{draftID}/punch-list [post]
func (h *DraftHandler) AddPunchItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddPunchItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "description is required")
		return
	}
	d, err := h.tracker.AddPunchItem(middleware.Email(r.Context()), chi.URLParam(r, "draftID"), req.Description)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// @Tags Drafts
// @Summary Remove a punch list item
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param itemID path string true "Punch list item ID"
// @Success 200 {object} tracker.Draft
// @Router /api/v1/drafts/{draftID}/punch-list/{itemID} [delete]
func (h *DraftHandler) RemovePunchItem(w http.ResponseWriter, r *http.Request) {
	d, err := h.tracker.RemovePunchItem(middleware.Email(r.Context()), chi.URLParam(r, "draftID"), chi.URLParam(r, "itemID"))
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// @Tags Drafts
// @Summary Toggle a punch list item in a draft
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param itemID path string true "Punch list item ID"
// @Success 200 {object} tracker.Draft
// @Router /api/v1/drafts/{draftID}/punch-list/{itemID}/toggle [post]
func (h *DraftHandler) TogglePunchItem(w http.ResponseWriter, r *http.Request) {
	d, err := h.tracker.ToggleDraftPunchItem(middleware.Email(r.Context()), chi.URLParam(r, "draftID"), chi.URLParam(r, "itemID"))
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// @Tags Drafts
// @Summary Save a draft
// @Description Writes the project and logs the net change since the draft was opened.
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} models.Project
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/drafts/{draftID}/save [post]
func (h *DraftHandler) Save(w http.ResponseWriter, r *http.Request) {
	p, err := h.tracker.SaveDraft(r.Context(), middleware.Email(r.Context()), chi.URLParam(r, "draftID"))
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
