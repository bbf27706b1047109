package infrastructure

import (
	"encoding/json"
	"log/slog"
	"sync"

	"taipeiTripWeb/internal/modules/view/domain"
)

// Hub fans render events out to every attached page. It is the message
// channel between the deciding layer and the displays.
type Hub struct {
	mu    sync.RWMutex
	pages map[*PageClient]struct{}
}

func NewHub() *Hub {
	return &Hub{pages: make(map[*PageClient]struct{})}
}

func (h *Hub) Attach(c *PageClient) {
	h.mu.Lock()
	h.pages[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("page attached", slog.String("remote", c.remote))
}

func (h *Hub) detach(c *PageClient) {
	h.mu.Lock()
	_, attached := h.pages[c]
	delete(h.pages, c)
	h.mu.Unlock()
	if attached {
		c.close()
		slog.Info("page detached", slog.String("remote", c.remote))
	}
}

// Broadcast pushes one render event to every page. A page that cannot keep
// up is detached rather than blocking the sender.
func (h *Hub) Broadcast(event domain.RenderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("render event marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	pages := make([]*PageClient, 0, len(h.pages))
	for page := range h.pages {
		pages = append(pages, page)
	}
	h.mu.RUnlock()

	for _, page := range pages {
		select {
		case page.send <- data:
		default:
			slog.Warn("page send buffer full", slog.String("remote", page.remote))
			go h.detach(page)
		}
	}
}
