package handler

import (
	"net/http"
	"net/url"

	"github.com/rghanem/souklist/internal/shopping"
)

type ShareHandler struct {
	store *shopping.Store
}

func NewShareHandler(store *shopping.Store) *ShareHandler {
	return &ShareHandler{store: store}
}

// Export returns the active list as plain text.
func (h *ShareHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.store.ExportText()))
}

// Share returns prefilled share-intent URLs for the exported text.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	text := h.store.ExportText()
	subject := "Shopping List: " + h.store.ActiveList()

	writeJSON(w, http.StatusOK, map[string]string{
		"whatsapp": "https://api.whatsapp.com/send?text=" + url.QueryEscape(text),
		"email":    "mailto:?subject=" + url.QueryEscape(subject) + "&body=" + url.QueryEscape(text),
	})
}
