package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	ws "github.com/coder/websocket"
)

const (
	sendBuffer   = 8
	pingInterval = 45 * time.Second
)

type client struct {
	conn *ws.Conn
	send chan []byte
}

// Handler upgrades requests to WebSocket and attaches them to the hub
// until the connection drops.
func Handler(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // single-user app, served on localhost
		})
		if err != nil {
			logger.Warn("websocket accept", "error", err)
			return
		}

		c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
		hub.add(c)
		defer hub.remove(c)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		go c.writeLoop(ctx)

		// Incoming frames carry nothing we act on; reading until error is
		// how we notice the peer going away.
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}
}

func (c *client) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
