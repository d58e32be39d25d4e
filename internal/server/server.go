// Package server wires the stores, handlers, and change feed into one
// HTTP surface.
package server

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/rghanem/souklist/internal/category"
	"github.com/rghanem/souklist/internal/handler"
	"github.com/rghanem/souklist/internal/middleware"
	"github.com/rghanem/souklist/internal/prefs"
	"github.com/rghanem/souklist/internal/shopping"
	"github.com/rghanem/souklist/internal/storage"
	ws "github.com/rghanem/souklist/internal/websocket"
)

// coalesceWindow is how long bursts of item events are collected before a
// single notification goes out to renderers.
const coalesceWindow = 300 * time.Millisecond

type Server struct {
	store  *shopping.Store
	hub    *ws.Hub
	events *ws.Coalescer

	listH  *handler.ListHandler
	itemH  *handler.ItemHandler
	viewH  *handler.ViewHandler
	prefsH *handler.PrefsHandler
	shareH *handler.ShareHandler

	logger *slog.Logger
}

// New loads the persisted store (running the legacy migration if needed)
// and builds the full handler graph.
func New(db *sql.DB, logger *slog.Logger) (*Server, error) {
	backend := storage.NewSQLite(db)

	store, err := shopping.Open(storage.NewBlob(backend))
	if err != nil {
		return nil, err
	}

	prefsStore := prefs.NewStore(backend)
	lang, err := prefsStore.Language()
	if err != nil {
		return nil, err
	}
	store.SetGeneralLabel(category.DefaultLabel(lang))

	hub := ws.NewHub(logger.With("component", "websocket"))
	events := ws.NewCoalescer(hub, coalesceWindow)

	return &Server{
		store:  store,
		hub:    hub,
		events: events,
		listH:  handler.NewListHandler(store, hub),
		itemH:  handler.NewItemHandler(store, events),
		viewH:  handler.NewViewHandler(store, prefsStore),
		prefsH: handler.NewPrefsHandler(prefsStore, store, hub),
		shareH: handler.NewShareHandler(store),
		logger: logger,
	}, nil
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/lists", s.listH.Get)
	mux.HandleFunc("POST /api/lists", s.listH.Create)
	mux.HandleFunc("PUT /api/lists/active", s.listH.SwitchActive)
	mux.HandleFunc("PUT /api/lists/{name}", s.listH.Rename)
	mux.HandleFunc("DELETE /api/lists/{name}", s.listH.Delete)

	mux.HandleFunc("GET /api/items", s.itemH.List)
	mux.HandleFunc("POST /api/items", s.itemH.Create)
	mux.HandleFunc("POST /api/items/clear", s.itemH.Clear)
	mux.HandleFunc("POST /api/items/undo", s.itemH.Undo)
	mux.HandleFunc("PUT /api/items/{id}", s.itemH.Update)
	mux.HandleFunc("DELETE /api/items/{id}", s.itemH.Delete)
	mux.HandleFunc("PUT /api/items/{id}/purchased", s.itemH.SetPurchased)

	mux.HandleFunc("GET /api/view", s.viewH.Get)
	mux.HandleFunc("GET /api/export", s.shareH.Export)
	mux.HandleFunc("GET /api/share", s.shareH.Share)

	mux.HandleFunc("GET /api/prefs", s.prefsH.Get)
	mux.HandleFunc("PUT /api/prefs", s.prefsH.Update)
	mux.HandleFunc("GET /api/categories/suggest", s.prefsH.SuggestCategory)

	mux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))

	return middleware.RequestLogger(s.logger)(mux)
}

// Close releases background resources.
func (s *Server) Close() {
	s.events.Stop()
}
