package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rghanem/souklist/internal/shopping"
	"github.com/rghanem/souklist/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps domain errors onto HTTP statuses. Anything
// unclassified is a server fault.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shopping.ErrNotFound), errors.Is(err, shopping.ErrUnknownList):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shopping.ErrDuplicateName), errors.Is(err, shopping.ErrLastList):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, shopping.ErrEmptyName):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrPersistenceFailure):
		writeError(w, http.StatusInternalServerError, "failed to persist changes")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
