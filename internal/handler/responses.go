package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

type SuccessResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON encodes payload into a pooled buffer before touching w, so an
// encoding failure never leaves a half-written body behind a 2xx status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status and message.
// 5xx are logged as errors, everything else as warnings.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action, "error", err)
	} else {
		log.Warn(action, "error", err)
	}
	respondError(w, status, message)
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Catalog is not loaded yet. Please try again later."

	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgInvalidQuantityError = "Quantity must be a positive number"

	ErrMsgLoadoutNotFoundError = "Loadout not found"
	ErrMsgEntryNotFoundError   = "That item is not in the loadout"
	ErrMsgInvalidSlotError     = "Invalid slot"
	ErrMsgSlotMismatchError    = "That item does not fit in this slot"
)

// serviceErrors is checked in order with errors.Is, so wrapped sentinels match too
var serviceErrors = []struct {
	target  error
	status  int
	message string
}{
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrLoadoutNotFound, http.StatusNotFound, ErrMsgLoadoutNotFoundError},
	{domain.ErrEntryNotFound, http.StatusNotFound, ErrMsgEntryNotFoundError},
	{domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidQuantityError},
	{domain.ErrInvalidSlot, http.StatusBadRequest, ErrMsgInvalidSlotError},
	{domain.ErrSlotMismatch, http.StatusBadRequest, ErrMsgSlotMismatchError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, ErrMsgUnavailableError},
	{domain.ErrCatalogEmpty, http.StatusServiceUnavailable, ErrMsgUnavailableError},
}

// mapServiceErrorToUserMessage turns a service error into a status and a message safe
// to show users. Anything that is not a known domain error becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	for _, e := range serviceErrors {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
