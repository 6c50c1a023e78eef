package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"threadboard/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFail translates an error into the structured failure response.
// Anything outside the taxonomy is logged and surfaced generically.
func writeFail(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		writeJSON(w, ae.StatusCode(), map[string]any{"errorMessage": ae.Message})
		return
	}
	log.Printf("unexpected error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{"errorMessage": "An unexpected error occurred."})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
