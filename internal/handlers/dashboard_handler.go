package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"projectcenter/internal/models"
	"projectcenter/internal/tracker"
)

type DashboardHandler struct {
	tracker *tracker.Tracker
}

func NewDashboardHandler(t *tracker.Tracker) *DashboardHandler {
	return &DashboardHandler{tracker: t}
}

// @Tags Dashboard
// @Summary Dashboard counters
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Stats())
}

// @Tags Change Log
// @Summary Change log, newest first
// @Security BearerAuth
// @Produce json
// @Param projectId query int false "Only entries for this project"
// @Success 200 {array} models.ChangeLogEntry
// @Router /api/v1/changelog [get]
func (h *DashboardHandler) ChangeLog(w http.ResponseWriter, r *http.Request) {
	var projectID int64
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "projectId must be a positive integer")
			return
		}
		projectID = id
	}
	entries := h.tracker.ChangeLog(projectID)
	if entries == nil {
		entries = []models.ChangeLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// @Tags Calendar
// @Summary Landing and FAT dates for a year
// @Description Twelve month buckets (month 0-11) plus dates that could not be parsed.
// @Security BearerAuth
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} calendar.YearView
// @Router /api/v1/calendar/{year} [get]
func (h *DashboardHandler) Year(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.tracker.Year(year))
}

// @Tags Calendar
// @Summary Landing and FAT dates for one month
// @Security BearerAuth
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month, 1-12"
// @Success 200 {object} calendar.MonthView
// @Router /api/v1/calendar/{year}/{month} [get]
func (h *DashboardHandler) Month(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "month must be between 1 and 12")
		return
	}
	writeJSON(w, http.StatusOK, h.tracker.Month(year, month-1))
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "year must be between 2000 and 2100")
		return 0, false
	}
	return year, true
}
