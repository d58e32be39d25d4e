package handler

import (
	"net/http"

	"github.com/rghanem/souklist/internal/model"
	"github.com/rghanem/souklist/internal/prefs"
	"github.com/rghanem/souklist/internal/shopping"
	"github.com/rghanem/souklist/internal/view"
)

type ViewHandler struct {
	store *shopping.Store
	prefs *prefs.Store
}

func NewViewHandler(store *shopping.Store, prefsStore *prefs.Store) *ViewHandler {
	return &ViewHandler{store: store, prefs: prefsStore}
}

// Get runs the view pipeline over the active list. Sort mode defaults to
// the stored preference; an explicit ?sort= overrides it for one request.
func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	mode, err := h.prefs.SortMode()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read preferences")
		return
	}
	if s := r.URL.Query().Get("sort"); s != "" {
		override, ok := model.ParseSortMode(s)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sort mode")
			return
		}
		mode = override
	}

	lang, err := h.prefs.Language()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read preferences")
		return
	}

	pipeline := view.NewPipeline(lang)
	vm := pipeline.Build(h.store.Items(), r.URL.Query().Get("search"), mode)
	writeJSON(w, http.StatusOK, map[string]any{
		"activeList": h.store.ActiveList(),
		"sort":       mode,
		"view":       vm,
	})
}
