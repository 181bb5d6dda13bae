package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "pdf-word-converter/pkg/errors"
)

// routeVar extracts a mux path variable.
func routeVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeAppError writes a structured error response (helper function)
func writeAppError(w http.ResponseWriter, err *apperrors.AppError) {
	writeJSON(w, apperrors.GetStatusCode(err), err)
}
