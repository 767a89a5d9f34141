package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

const quantityParam = "quantity"

// ValidationErrorResponse is written when a body decodes but fails its validate tags
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeAndValidate reads a JSON body into req and runs the struct validator.
// On failure the 400 response is already written and the caller just returns.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, action string) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Undecodable request body", "action", action, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug("Request failed validation", "action", action, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// GetOptionalQueryParam returns the query value or defaultValue when it is absent or empty
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}

// GetPathParam reads a chi URL parameter, writing a 400 when it is empty
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

func GetIntPathParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw, ok := GetPathParam(r, w, paramName)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidIntParam, paramName))
		return 0, false
	}
	return n, true
}

// GetQuantityParam reads ?quantity=. Missing means 1; anything that is not a
// positive integer is a 400.
func GetQuantityParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	n, err := strconv.Atoi(GetOptionalQueryParam(r, quantityParam, "1"))
	if err != nil || n < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidQuantity)
		return 0, false
	}
	return n, true
}

// LogRequestFields logs the interesting parts of a decoded request at debug level
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	log.Debug("Request details", keyvals...)
}

// handleAction decodes REQ from the body, runs action and writes its result with status.
// Service errors go through respondServiceError.
func handleAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	action string,
	status int,
	fn func(context.Context, REQ) (RES, error),
) {
	var req REQ
	if !decodeAndValidate(w, r, &req, action) {
		return
	}

	res, err := fn(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, action, err)
		return
	}
	respondJSON(w, status, res)
}
