package ui

import (
	"encoding/json"
	"io"
	"net/http"

	"randlab/domain/core"
	"randlab/internal/config"
	"randlab/internal/errors"
)

// handleHealth reports liveness
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateRun accepts a JSON run spec and returns the full run report
func (a *App) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		appErr := errors.InvalidInput("request body unreadable or too large")
		writeError(w, statusFor(appErr), appErr)
		return
	}

	spec, err := config.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.pipeline.Run(r.Context(), spec)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusFor maps core error taxonomy onto HTTP status codes: bad input is the
// caller's fault, everything else is ours.
func statusFor(err error) int {
	if core.IsValidationError(err) || core.IsUnknownVariantError(err) {
		return http.StatusBadRequest
	}
	if errors.GetCode(err) == errors.CodeConfigInvalid || errors.GetCode(err) == errors.CodeInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already gone; nothing left to do
		return
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
