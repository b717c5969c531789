package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/leads"
	"leadcomposer/internal/links"
	"leadcomposer/internal/whatsapp"
)

// ValueRequest is the body of every single-field update.
type ValueRequest struct {
	Value string `json:"value"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func jsonError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeError maps a domain error to its status code. lang picks the language
// of user-facing notices.
func writeError(w http.ResponseWriter, err error, lang string) {
	var verr *links.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"success": false,
			"message": verr.Notice(lang),
			"field":   verr.Field,
		})
	case errors.Is(err, links.ErrEmptyBatch):
		jsonError(w, links.Notice(err, lang), http.StatusUnprocessableEntity)
	case errors.Is(err, leads.ErrLeadNotFound), errors.Is(err, catalog.ErrTemplateNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, leads.ErrLastLead):
		jsonError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, catalog.ErrInternalNameRequired),
		errors.Is(err, catalog.ErrLabelRequired),
		errors.Is(err, catalog.ErrMessageRequired),
		errors.Is(err, leads.ErrLanguageRequired):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, whatsapp.ErrNotConnected):
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON in request body: %w", err)
	}
	return nil
}
