package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"staffly-backend/internal/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps AppErrors to their HTTP status and hides everything
// else behind a generic 500. The server stays up either way.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Printf("Error (%s): %v", appErr.Code, appErr.Err)
		}
		writeJSON(w, appErr.HTTPStatus, map[string]string{"error": appErr.Message})
		return
	}
	log.Printf("Error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
