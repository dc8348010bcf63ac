package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"projectcenter/internal/middleware"
	"projectcenter/internal/models"
	"projectcenter/internal/tracker"
)

type ProjectHandler struct {
	tracker   *tracker.Tracker
	validator *validator.Validate
}

func NewProjectHandler(t *tracker.Tracker) *ProjectHandler {
	return &ProjectHandler{tracker: t, validator: validator.New()}
}

// @Tags Projects
// @Summary List projects
// @Security BearerAuth
// @Produce json
// @Param category query string false "Pumping, Field Service or EHV"
// @Param status query string false "Active, Critical, Late or Done"
// @Param search query string false "Matches utility, substation or order"
// @Success 200 {array} models.Project
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ProjectFilter{
		Category: models.ProjectCategory(q.Get("category")),
		Status:   models.ProjectStatus(q.Get("status")),
		Search:   q.Get("search"),
	}
	writeJSON(w, http.StatusOK, h.tracker.Projects(filter))
}

// @Tags Projects
// @Summary Create project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	p, err := h.tracker.Create(r.Context(), middleware.Email(r.Context()), req)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// @Tags Projects
// @Summary Get project
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	p, err := h.tracker.Project(id)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Replace saves a whole edited project. Only the difference from the stored
// version is written to the change log.
//
// @Tags Projects
// @Summary Save edited project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body models.Project true "Edited project"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return
	}
	p.ID = id

	saved, err := h.tracker.Save(r.Context(), middleware.Email(r.Context()), p)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// @Tags Projects
// @Summary Update project fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body models.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Router /api/v1/projects/{id} [patch]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	saved, err := h.tracker.Update(r.Context(), middleware.Email(r.Context()), id, req)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// @Tags Projects
// @Summary Delete project
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	if err := h.tracker.Delete(r.Context(), middleware.Email(r.Context()), id); err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Project deleted")
}

// @Tags Punch List
// @Summary Projects with an open punch list
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/v1/projects/punch-list [get]
func (h *ProjectHandler) PunchList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.NeedsPunchList())
}

// @Tags Punch List
// @Summary Toggle a punch list item
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Param itemID path string true "Punch list item ID"
// @Success 200 {object} models.Project
// @Router /api/v1/projects/{id}/punch-list/{itemID}/toggle [post]
func (h *ProjectHandler) TogglePunchItem(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	p, err := h.tracker.TogglePunchItem(r.Context(), middleware.Email(r.Context()), id, chi.URLParam(r, "itemID"))
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Tags Punch List
// @Summary Attach a photo or video to a punch list item
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param itemID path string true "Punch list item ID"
// @Param file formData file true "Image or video, up to 25MB"
// @Success 201 {object} models.PunchListAttachment
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/projects/{id}/punch-list/{itemID}/attachments [post]
func (h *ProjectHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, tracker.MaxAttachmentSize+(1<<20))
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "file exceeds the 25MB limit")
			return
		}
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(header.Filename)); byExt != "" {
			contentType = byExt
		}
	}

	att, err := h.tracker.AddAttachment(r.Context(), middleware.Email(r.Context()), id, chi.URLParam(r, "itemID"), tracker.Upload{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, att)
}

// @Tags Punch List
// @Summary Remove an attachment
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Param itemID path string true "Punch list item ID"
// @Param attachmentID path string true "Attachment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/projects/{id}/punch-list/{itemID}/attachments/{attachmentID} [delete]
func (h *ProjectHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	err := h.tracker.RemoveAttachment(r.Context(), middleware.Email(r.Context()), id,
		chi.URLParam(r, "itemID"), chi.URLParam(r, "attachmentID"))
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Attachment removed")
}

func projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "project id must be a positive integer")
		return 0, false
	}
	return id, true
}
