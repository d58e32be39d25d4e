package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rghanem/souklist/internal/shopping"
	"github.com/rghanem/souklist/internal/websocket"
)

type ListHandler struct {
	store *shopping.Store
	hub   *websocket.Hub
}

func NewListHandler(store *shopping.Store, hub *websocket.Hub) *ListHandler {
	return &ListHandler{store: store, hub: hub}
}

func (h *ListHandler) publish(action, list string) {
	if h.hub != nil {
		h.hub.Publish(websocket.Event{Entity: "list", Action: action, List: list})
	}
}

type listNameRequest struct {
	Name string `json:"name"`
}

func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"lists":      h.store.ListNames(),
		"activeList": h.store.ActiveList(),
	})
}

func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.store.CreateList(req.Name); err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("created", h.store.ActiveList())
	writeJSON(w, http.StatusCreated, map[string]string{"activeList": h.store.ActiveList()})
}

func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := h.store.DeleteList(name); err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("deleted", name)
	writeJSON(w, http.StatusOK, map[string]string{"activeList": h.store.ActiveList()})
}

func (h *ListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	oldName := r.PathValue("name")

	var req listNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.store.RenameList(oldName, req.Name); err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("renamed", req.Name)
	writeJSON(w, http.StatusOK, map[string]any{
		"lists":      h.store.ListNames(),
		"activeList": h.store.ActiveList(),
	})
}

func (h *ListHandler) SwitchActive(w http.ResponseWriter, r *http.Request) {
	var req listNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.store.SwitchActive(req.Name); err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("switched", req.Name)
	writeJSON(w, http.StatusOK, map[string]string{"activeList": h.store.ActiveList()})
}
