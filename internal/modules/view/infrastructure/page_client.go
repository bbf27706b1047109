package infrastructure

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// PageClient is one connected page receiving render events.
type PageClient struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	remote    string
	closeOnce sync.Once
}

func NewPageClient(hub *Hub, conn *websocket.Conn, remote string, buf int) *PageClient {
	if buf <= 0 {
		buf = 32
	}
	return &PageClient{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, buf),
		remote: remote,
	}
}

func (c *PageClient) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

func (c *PageClient) WritePump() {
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("page write error", slog.String("remote", c.remote), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				slog.Warn("page ping error", slog.String("remote", c.remote), slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump drains the connection; pages only receive, so inbound frames are
// discarded and the pump exists to notice disconnects.
func (c *PageClient) ReadPump() {
	c.conn.SetReadLimit(1 << 12)
	_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	defer c.hub.detach(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("page read error", slog.String("remote", c.remote), slog.Any("error", err))
			}
			return
		}
	}
}
