package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"projectcenter/internal/tracker"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writeTrackerError maps tracker failures onto HTTP statuses.
func writeTrackerError(w http.ResponseWriter, err error) {
	var verr *tracker.ValidationError
	var berr *tracker.BackendError
	switch {
	case errors.As(err, &verr):
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", verr.Error())
	case errors.Is(err, tracker.ErrProjectNotFound),
		errors.Is(err, tracker.ErrDraftNotFound),
		errors.Is(err, tracker.ErrPunchItemNotFound),
		errors.Is(err, tracker.ErrAttachmentNotFound):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, tracker.ErrPunchListLocked):
		writeJSONErrorResponse(w, http.StatusConflict, "punch_list_locked", err.Error())
	case errors.Is(err, tracker.ErrNoBlobStore):
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
	case errors.As(err, &berr):
		writeJSONErrorResponse(w, http.StatusBadGateway, "backend_unavailable", "The change was not saved: "+berr.Op+" failed")
	default:
		log.Printf("Unhandled error: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
