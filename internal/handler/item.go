package handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rghanem/souklist/internal/shopping"
	"github.com/rghanem/souklist/internal/websocket"
)

// UndoWindow is how long a cleared list can be restored. The window is a
// policy of this layer; the store's undo buffer itself is timeless.
const UndoWindow = 5 * time.Second

type ItemHandler struct {
	store  *shopping.Store
	events *websocket.Coalescer
	window time.Duration

	mu        sync.Mutex
	undoTimer *time.Timer
}

func NewItemHandler(store *shopping.Store, events *websocket.Coalescer) *ItemHandler {
	return &ItemHandler{store: store, events: events, window: UndoWindow}
}

func (h *ItemHandler) publish(action string, id int64) {
	if h.events != nil {
		h.events.Offer(websocket.Event{
			Entity: "item",
			Action: action,
			List:   h.store.ActiveList(),
			ID:     id,
		})
	}
}

type itemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Items())
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	item, err := h.store.AddItem(req.Name, req.Quantity, req.Price, req.Category)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("added", item.ID)
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	item, err := h.store.UpdateItem(id, req.Name, req.Quantity, req.Price, req.Category)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("updated", item.ID)
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.RemoveItem(id); err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("removed", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type purchasedRequest struct {
	Purchased bool `json:"purchased"`
}

func (h *ItemHandler) SetPurchased(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req purchasedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.store.SetPurchased(id, req.Purchased); err != nil {
		writeStoreError(w, err)
		return
	}

	h.publish("purchased", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Clear empties the active list and opens the undo window. A new clear
// restarts the window and replaces the pending capture.
func (h *ItemHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAll(); err != nil {
		writeStoreError(w, err)
		return
	}

	if h.store.UndoPending() {
		h.scheduleExpiry()
	}

	h.publish("cleared", 0)
	writeJSON(w, http.StatusOK, map[string]any{"undoAvailable": h.store.UndoPending()})
}

// Undo restores the last cleared items if the window is still open.
func (h *ItemHandler) Undo(w http.ResponseWriter, r *http.Request) {
	h.cancelExpiry()

	restored, err := h.store.Undo()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !restored {
		writeError(w, http.StatusGone, "nothing to undo")
		return
	}

	h.publish("restored", 0)
	writeJSON(w, http.StatusOK, h.store.Items())
}

func (h *ItemHandler) scheduleExpiry() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.undoTimer != nil {
		h.undoTimer.Stop()
	}
	h.undoTimer = time.AfterFunc(h.window, h.store.DiscardUndo)
}

func (h *ItemHandler) cancelExpiry() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.undoTimer != nil {
		h.undoTimer.Stop()
		h.undoTimer = nil
	}
}
