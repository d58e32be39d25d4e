package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rghanem/souklist/internal/category"
	"github.com/rghanem/souklist/internal/model"
	"github.com/rghanem/souklist/internal/prefs"
	"github.com/rghanem/souklist/internal/shopping"
	"github.com/rghanem/souklist/internal/websocket"
)

type PrefsHandler struct {
	prefs *prefs.Store
	store *shopping.Store
	hub   *websocket.Hub
}

func NewPrefsHandler(prefsStore *prefs.Store, store *shopping.Store, hub *websocket.Hub) *PrefsHandler {
	return &PrefsHandler{prefs: prefsStore, store: store, hub: hub}
}

type prefsPayload struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Sort     string `json:"sort,omitempty"`
}

func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, err := h.prefs.Language()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read preferences")
		return
	}
	theme, err := h.prefs.Theme()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read preferences")
		return
	}
	mode, err := h.prefs.SortMode()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read preferences")
		return
	}

	writeJSON(w, http.StatusOK, prefsPayload{
		Language: string(lang),
		Theme:    string(theme),
		Sort:     string(mode),
	})
}

// Update sets any preferences present in the payload. A language change
// also moves the store's default category label so new uncategorized items
// land in the right bucket.
func (h *PrefsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req prefsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Language != "" {
		lang := prefs.Language(req.Language)
		if err := h.prefs.SetLanguage(lang); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.store.SetGeneralLabel(category.DefaultLabel(lang))
	}
	if req.Theme != "" {
		if err := h.prefs.SetTheme(prefs.Theme(req.Theme)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Sort != "" {
		if err := h.prefs.SetSortMode(model.SortMode(req.Sort)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if h.hub != nil {
		h.hub.Publish(websocket.Event{Entity: "prefs", Action: "updated"})
	}
	h.Get(w, r)
}

// SuggestCategory guesses a category for a prospective item name.
func (h *PrefsHandler) SuggestCategory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	suggestion := category.Suggest(name)
	if suggestion == "" {
		lang, err := h.prefs.Language()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read preferences")
			return
		}
		suggestion = category.DefaultLabel(lang)
	}
	writeJSON(w, http.StatusOK, map[string]string{"category": suggestion})
}
